package domain

import "errors"

var (
	// ErrDataAccess indicates that a backend call failed in transport or on the server.
	ErrDataAccess = errors.New("data access failed")

	// ErrEmptyResult indicates that a write reported success but returned no row.
	ErrEmptyResult = errors.New("no data returned from upsert operation")

	// ErrInvalidRecord indicates that a model price failed validation.
	ErrInvalidRecord = errors.New("invalid model price")
)
