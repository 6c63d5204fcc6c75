// Package extractor derives the account, period and balance fields from
// statement text. Each extractor walks its own ordered pattern list and
// resolves to a documented default when nothing matches; a missing field
// is never an error.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/finstatement/internal/models"
)

// Masked account number phrasings, tried in order. Each captures the last
// four digits.
var accountNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s+(?:number|#|no)?[:.\s]+[*xX]+(\d{4})`),
	regexp.MustCompile(`(?i)account\s+(?:ending|#)?\s+(?:in|with)?\s+(\d{4})`),
	regexp.MustCompile(`(?i)acct\s+[*xX]+(\d{4})`),
}

// Holder name phrasings, tried in order.
var accountNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)account\s+name:?\s+([A-Z\s]+)`),
	regexp.MustCompile(`(?i)primary\s+account\s+holder:?\s+([A-Z\s]+)`),
}

// ExtractAccountInfo extracts the masked account number and holder name
// from statement text. Institution and statement type are copied through
// from the classifiers. Only bank and credit-card statements carry the
// account phrasings this extractor knows; for other types the number stays
// at its default.
func ExtractAccountInfo(text, institution, statementType string) models.AccountInfo {
	number := models.UnknownAccountNumber
	var name *string

	if statementType == models.TypeBank || statementType == models.TypeCreditCard {
		for _, pattern := range accountNumberPatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				number = fmt.Sprintf("xxxx-xxxx-xxxx-%s", m[1])
				break
			}
		}

		for _, pattern := range accountNamePatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				trimmed := strings.TrimSpace(m[1])
				name = &trimmed
				break
			}
		}
	}

	return models.AccountInfo{
		Number:      number,
		Name:        name,
		Institution: institution,
		Type:        statementType,
	}
}
