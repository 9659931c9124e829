package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency all stored prices are denominated in.
const BaseCurrency = "USD"

// RateSource tells where the session's exchange rates came from.
type RateSource string

const (
	// RateSourceLive means rates were fetched from the exchange-rate provider.
	RateSourceLive RateSource = "live"

	// RateSourceFallback means the static table is in use.
	RateSourceFallback RateSource = "fallback"
)

// RateTable maps a currency code to its multiplier relative to USD.
type RateTable map[string]decimal.Decimal

// Rate returns the multiplier for a currency code.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t[code]
	return rate, ok
}

// CurrencyList is a sorted set of known currency codes.
type CurrencyList []string

// NewCurrencyList sorts and de-duplicates codes.
func NewCurrencyList(codes []string) CurrencyList {
	list := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			list = append(list, code)
		}
	}
	slices.Sort(list)

	return slices.Compact(list)
}

// Search returns codes containing query, ignoring case. An empty query matches everything.
func (l CurrencyList) Search(query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))

	matches := make([]string, 0, len(l))
	for _, code := range l {
		if strings.Contains(strings.ToLower(code), needle) {
			matches = append(matches, code)
		}
	}

	return matches
}

// ExchangeRates is the rate snapshot loaded once at startup.
type ExchangeRates struct {
	Rates      RateTable
	Currencies CurrencyList
	Source     RateSource
}

// FallbackExchangeRates returns the static three-currency table.
func FallbackExchangeRates() *ExchangeRates {
	return &ExchangeRates{
		Rates: RateTable{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.85"),
			"GBP": decimal.RequireFromString("0.75"),
		},
		Currencies: NewCurrencyList([]string{"USD", "EUR", "GBP"}),
		Source:     RateSourceFallback,
	}
}

// RateFor returns the multiplier for a currency, defaulting to 1 when the code is unknown.
func (r *ExchangeRates) RateFor(code string) decimal.Decimal {
	if r == nil {
		return decimal.NewFromInt(1)
	}

	rate, ok := r.Rates.Rate(code)
	if !ok {
		return decimal.NewFromInt(1)
	}

	return rate
}
