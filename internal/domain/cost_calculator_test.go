package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
)

func TestStandardCostCalculator_UnitCost(t *testing.T) {
	calculator := domain.NewStandardCostCalculator(domain.CalculatorOptions{})

	tests := []struct {
		name         string
		rate         string
		tokens       uint64
		exchangeRate string
		expected     string
	}{
		{name: "one million tokens at rate one is the rate", rate: "2.5", tokens: 1000000, exchangeRate: "1", expected: "2.5"},
		{name: "converted by exchange rate", rate: "3", tokens: 1234, exchangeRate: "0.85", expected: "0.0031467"},
		{name: "zero exchange rate", rate: "15", tokens: 1000000, exchangeRate: "0", expected: "0"},
		{name: "zero tokens", rate: "15", tokens: 0, exchangeRate: "1", expected: "0"},
		{name: "large token count stays exact", rate: "0.075", tokens: 18000000000000000000, exchangeRate: "1", expected: "1350000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := calculator.UnitCost(
				decimal.RequireFromString(tt.rate),
				tt.tokens,
				decimal.RequireFromString(tt.exchangeRate),
			)
			require.True(t, cost.Equal(decimal.RequireFromString(tt.expected)), "got %s", cost)
		})
	}
}

func TestStandardCostCalculator_UnitCostIdentity(t *testing.T) {
	calculator := domain.NewStandardCostCalculator(domain.CalculatorOptions{})

	for _, rate := range []string{"0", "0.15", "2.5", "75", "123.456789"} {
		r := decimal.RequireFromString(rate)
		require.True(t, calculator.UnitCost(r, 1000000, decimal.NewFromInt(1)).Equal(r), rate)
	}
}

func TestStandardCostCalculator_TotalCost(t *testing.T) {
	input := decimal.RequireFromString("0.0014")
	output := decimal.RequireFromString("0.0014")

	t.Run("sums raw values by default", func(t *testing.T) {
		calculator := domain.NewStandardCostCalculator(domain.CalculatorOptions{})

		total := calculator.TotalCost(input, output)
		require.True(t, total.Equal(decimal.RequireFromString("0.0028")))
		require.Equal(t, "0.003", domain.FormatPrice(total))
	})

	t.Run("rounds operands first when configured", func(t *testing.T) {
		calculator := domain.NewStandardCostCalculator(domain.CalculatorOptions{RoundBeforeSum: true})

		total := calculator.TotalCost(input, output)
		require.True(t, total.Equal(decimal.RequireFromString("0.002")))
		require.Equal(t, "0.002", domain.FormatPrice(total))
	})
}
