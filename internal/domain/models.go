package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModelPrice is a pricing record for one model. ModelName is the natural key.
type ModelPrice struct {
	ModelName   string          `json:"model_name"`
	InputPrice  decimal.Decimal `json:"input_price"`  // USD per 1M input tokens
	OutputPrice decimal.Decimal `json:"output_price"` // USD per 1M output tokens
	Provider    string          `json:"provider"`
}

// TotalPrice returns the unrounded USD sum of both per-million rates.
func (m ModelPrice) TotalPrice() decimal.Decimal {
	return m.InputPrice.Add(m.OutputPrice)
}

// EventKind classifies a realtime notification.
type EventKind string

const (
	// EventInsert reports a newly inserted model price.
	EventInsert EventKind = "insert"

	// EventResync reports that notifications may have been lost and the list must be re-fetched.
	EventResync EventKind = "resync"
)

// InsertEvent is delivered to subscribers of the model price table.
type InsertEvent struct {
	ID         string     `json:"id"`
	Kind       EventKind  `json:"kind"`
	Record     ModelPrice `json:"record"`
	ReceivedAt time.Time  `json:"received_at"`
}

// Quote holds the user inputs for a price comparison.
type Quote struct {
	InputTokens  uint64 `json:"input_tokens"`
	OutputTokens uint64 `json:"output_tokens"`
	Currency     string `json:"currency"`
}

// Comparison is a rendered price table for a quote.
type Comparison struct {
	Currency           string          `json:"currency"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	InputTokens        uint64          `json:"input_tokens"`
	OutputTokens       uint64          `json:"output_tokens"`
	InputTokensWords   string          `json:"input_tokens_words"`
	OutputTokensWords  string          `json:"output_tokens_words"`
	InputTokensGroups  string          `json:"input_tokens_display"`
	OutputTokensGroups string          `json:"output_tokens_display"`
	Rows               []ComparisonRow `json:"rows"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// ComparisonRow is one model line of a comparison, highest total first.
type ComparisonRow struct {
	ModelName   string          `json:"model_name"`
	Provider    string          `json:"provider"`
	InputPrice  decimal.Decimal `json:"input_price"`
	OutputPrice decimal.Decimal `json:"output_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	InputCost   string          `json:"input_cost"`
	OutputCost  string          `json:"output_cost"`
	TotalCost   string          `json:"total_cost"`
}

// ComparisonUpdate carries a refreshed comparison or the error that prevented it.
type ComparisonUpdate struct {
	EventID    string      `json:"event_id"`
	Comparison *Comparison `json:"comparison,omitempty"`
	Error      error       `json:"-"`
}
