package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
)

func TestFallbackExchangeRates(t *testing.T) {
	rates := domain.FallbackExchangeRates()

	require.Equal(t, domain.RateSourceFallback, rates.Source)
	require.True(t, rates.RateFor("USD").Equal(decimal.NewFromInt(1)))
	require.True(t, rates.RateFor("EUR").Equal(decimal.RequireFromString("0.85")))
	require.True(t, rates.RateFor("GBP").Equal(decimal.RequireFromString("0.75")))
	require.Equal(t, domain.CurrencyList{"EUR", "GBP", "USD"}, rates.Currencies)
}

func TestExchangeRates_RateFor(t *testing.T) {
	t.Run("unknown code defaults to one", func(t *testing.T) {
		require.True(t, domain.FallbackExchangeRates().RateFor("JPY").Equal(decimal.NewFromInt(1)))
	})

	t.Run("nil snapshot defaults to one", func(t *testing.T) {
		var rates *domain.ExchangeRates
		require.True(t, rates.RateFor("EUR").Equal(decimal.NewFromInt(1)))
	})
}

func TestNewCurrencyList(t *testing.T) {
	list := domain.NewCurrencyList([]string{"USD", " EUR ", "", "GBP", "USD"})
	require.Equal(t, domain.CurrencyList{"EUR", "GBP", "USD"}, list)
}

func TestCurrencyList_Search(t *testing.T) {
	list := domain.NewCurrencyList([]string{"USD", "EUR", "GBP", "AUD"})

	tests := []struct {
		query    string
		expected []string
	}{
		{query: "", expected: []string{"AUD", "EUR", "GBP", "USD"}},
		{query: "ud", expected: []string{"AUD"}},
		{query: " us ", expected: []string{"USD"}},
		{query: "e", expected: []string{"EUR"}},
		{query: "xyz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			require.Equal(t, tt.expected, list.Search(tt.query))
		})
	}
}
