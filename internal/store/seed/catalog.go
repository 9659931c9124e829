// Package seed loads the built-in model price catalog into an empty or partial store.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/davidbz/pricewise/internal/domain"
)

// Prices per 1M tokens, USD.
//
//nolint:gochecknoglobals // Immutable catalog
var catalog = []struct {
	model    string
	provider string
	input    string
	output   string
}{
	{"gpt-4o", "openai", "2.5", "10"},
	{"gpt-4o-mini", "openai", "0.15", "0.6"},
	{"gpt-4-turbo", "openai", "10", "30"},
	{"gpt-3.5-turbo", "openai", "0.5", "1.5"},
	{"o1", "openai", "15", "60"},
	{"claude-3-5-sonnet", "anthropic", "3", "15"},
	{"claude-3-5-haiku", "anthropic", "0.8", "4"},
	{"claude-3-opus", "anthropic", "15", "75"},
	{"gemini-1.5-pro", "google", "1.25", "5"},
	{"gemini-1.5-flash", "google", "0.075", "0.3"},
	{"mistral-large", "mistral", "2", "6"},
	{"echo-4", "echo", "0", "0"},
}

// Catalog returns the built-in model prices in a stable order.
func Catalog() []domain.ModelPrice {
	records := make([]domain.ModelPrice, 0, len(catalog))
	for _, entry := range catalog {
		records = append(records, domain.ModelPrice{
			ModelName:   entry.model,
			InputPrice:  decimal.RequireFromString(entry.input),
			OutputPrice: decimal.RequireFromString(entry.output),
			Provider:    entry.provider,
		})
	}
	return records
}
