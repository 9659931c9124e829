package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Rates are quoted per 1M tokens, i.e. 10^6.
const tokensPerMillionExp int32 = 6

// CalculatorOptions tunes how totals are derived.
type CalculatorOptions struct {
	// RoundBeforeSum rounds each line item to display precision before summing,
	// keeping the displayed total equal to the sum of the displayed line items.
	RoundBeforeSum bool
}

// StandardCostCalculator implements per-million token cost calculation.
type StandardCostCalculator struct {
	roundBeforeSum bool
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(opts CalculatorOptions) *StandardCostCalculator {
	return &StandardCostCalculator{
		roundBeforeSum: opts.RoundBeforeSum,
	}
}

// UnitCost computes ratePerMillion * tokens * exchangeRate / 1,000,000 exactly.
func (c *StandardCostCalculator) UnitCost(
	ratePerMillion decimal.Decimal,
	tokens uint64,
	exchangeRate decimal.Decimal,
) decimal.Decimal {
	tokenCount := decimal.NewFromBigInt(new(big.Int).SetUint64(tokens), 0)

	return ratePerMillion.Mul(tokenCount).Mul(exchangeRate).Shift(-tokensPerMillionExp)
}

// TotalCost sums the input and output costs.
func (c *StandardCostCalculator) TotalCost(inputCost, outputCost decimal.Decimal) decimal.Decimal {
	if c.roundBeforeSum {
		return inputCost.Round(displayPlaces).Add(outputCost.Round(displayPlaces))
	}

	return inputCost.Add(outputCost)
}
