package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const displayPlaces int32 = 3

// Word tables for English short-scale numbers.
//
//nolint:gochecknoglobals // Immutable lookup tables
var (
	onesWords  = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	teensWords = [...]string{
		"ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	tensWords  = [...]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scaleWords = [...]string{"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion"}

	englishPrinter = message.NewPrinter(language.English)
)

// FormatPrice renders a price with at most three fractional digits and no trailing zeros.
// Rounding is half away from zero, so 1.2345 renders as "1.235".
func FormatPrice(value decimal.Decimal) string {
	if value.IsZero() {
		return "0"
	}

	// String trims trailing zeros and a dangling decimal point.
	return value.Round(displayPlaces).String()
}

// NumberToWords spells out n in English, e.g. 1234 -> "one thousand two hundred thirty four".
// Every uint64 value is supported.
func NumberToWords(n uint64) string {
	if n == 0 {
		return "zero"
	}

	var groups []uint64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	words := make([]string, 0, len(groups)*5)
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		words = appendHundreds(words, groups[i])
		if scaleWords[i] != "" {
			words = append(words, scaleWords[i])
		}
	}

	return strings.Join(words, " ")
}

// GroupDigits renders n with English thousands separators, e.g. "1,000,000".
func GroupDigits(n uint64) string {
	return englishPrinter.Sprintf("%d", n)
}

// appendHundreds appends the words for a value below one thousand.
func appendHundreds(words []string, n uint64) []string {
	if n >= 100 {
		words = append(words, onesWords[n/100], "hundred")
		n %= 100
	}

	switch {
	case n >= 20:
		words = append(words, tensWords[n/10])
		if n%10 != 0 {
			words = append(words, onesWords[n%10])
		}
	case n >= 10:
		words = append(words, teensWords[n-10])
	case n > 0:
		words = append(words, onesWords[n])
	}

	return words
}
