// Package currencyutils provides amount normalization for statement text.
package currencyutils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/finstatement/internal/parsererror"
)

// ParseAmount normalizes a currency token from statement text and parses it
// as a decimal. It strips the dollar sign and comma thousands separators,
// so "$1,234.56", "1234.56" and "1,234.56" all parse to 1234.56. An
// explicit leading sign is preserved.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := StandardizeAmount(amountStr)
	if cleaned == "" {
		return decimal.Zero, &parsererror.DataExtractionError{Field: "amount", Value: amountStr, Err: errors.New("empty amount")}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.DataExtractionError{Field: "amount", Value: amountStr, Err: err}
	}
	return amount, nil
}

// StandardizeAmount strips currency symbols, thousands separators and
// surrounding whitespace, leaving a string decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, "$", "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return amountStr
}

// HasExplicitSign reports whether the raw token carries a leading + or -
// before any currency symbol. Sign-flip conventions (Amex) need to know
// whether the source committed to a sign.
func HasExplicitSign(amountStr string) bool {
	trimmed := strings.TrimSpace(amountStr)
	return strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "+")
}
