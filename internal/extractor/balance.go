package extractor

import (
	"regexp"

	"github.com/shopspring/decimal"

	"fjacquet/finstatement/internal/currencyutils"
	"fjacquet/finstatement/internal/models"
)

const amountToken = `([\$]?[\d,]+\.\d{2})`

// Closing balance phrasings common to all statement types, in order.
var closingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)closing\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)ending\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)balance\s+forward:?\s+` + amountToken),
}

// Extra closing phrasings credit-card statements use, appended after the
// generic list.
var creditCardClosingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)new\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)total\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)statement\s+balance:?\s+` + amountToken),
}

// Opening balance phrasings, independent of the closing list.
var openingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)opening\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)previous\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)beginning\s+balance:?\s+` + amountToken),
	regexp.MustCompile(`(?i)balance\s+(?:from|as of)\s+last\s+statement:?\s+` + amountToken),
}

// ExtractBalance extracts the closing and opening balances. Credit-card
// statements get additional closing phrasings after the generic set. A
// missing closing balance defaults to zero; a missing opening balance
// stays absent.
func ExtractBalance(text, statementType string) models.Balance {
	patterns := closingPatterns
	if statementType == models.TypeCreditCard {
		patterns = append(append([]*regexp.Regexp{}, closingPatterns...), creditCardClosingPatterns...)
	}

	closing := decimal.Zero
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if amount, err := currencyutils.ParseAmount(m[1]); err == nil {
				closing = amount
			}
			break
		}
	}

	var opening *decimal.Decimal
	for _, pattern := range openingPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if amount, err := currencyutils.ParseAmount(m[1]); err == nil {
				opening = &amount
			}
			break
		}
	}

	return models.Balance{Closing: closing, Opening: opening}
}
