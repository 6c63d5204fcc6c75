package classifier

import (
	"regexp"

	"fjacquet/finstatement/internal/models"
)

// TypePattern pairs a statement type identifier with its cue pattern.
// Ordered for the same first-match contract as the institution table:
// credit-card cues are checked before bank cues, bank before investment.
type TypePattern struct {
	ID      string
	Pattern *regexp.Regexp
}

var typePatterns = []TypePattern{
	{models.TypeCreditCard, regexp.MustCompile(`(?i)credit\s+card|credit\s+account|APR|cash\s+advance`)},
	{models.TypeBank, regexp.MustCompile(`(?i)checking|savings|bank\s+statement|deposit|ATM|withdraw`)},
	{models.TypeInvestment, regexp.MustCompile(`(?i)investment|portfolio|securities|brokerage|fund|stock|bond`)},
}

// DetectStatementType returns the first statement type whose cue group
// matches the text, or models.TypeUnknown.
func DetectStatementType(text string) string {
	for _, tp := range typePatterns {
		if tp.Pattern.MatchString(text) {
			return tp.ID
		}
	}
	return models.TypeUnknown
}
