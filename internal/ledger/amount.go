package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseAmount converts a locale-formatted numeric literal into a decimal.
// The input uses "." as the thousands separator and "," as the decimal
// separator: "1.234,56" parses to 1234.56, a plain "150" stays 150.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: negative amounts are not allowed", s)
	}
	return d, nil
}

var amountPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders d in the same locale format ParseAmount accepts,
// always with two fraction digits: 1234.56 renders as "1.234,56".
func FormatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprint(number.Decimal(
		d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
