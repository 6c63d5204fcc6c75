// Package classifier labels statement text with an institution identifier
// and a statement type. Both classifiers hold fixed, ordered pattern tables
// compiled once at startup and shared read-only across concurrent parses.
package classifier

import (
	"regexp"

	"fjacquet/finstatement/internal/models"
)

// InstitutionPattern pairs an institution identifier with its detection
// pattern. The table is an ordered slice, not a map: when text matches
// more than one institution, the earlier-declared one wins, and that
// ordering is part of the contract.
type InstitutionPattern struct {
	ID      string
	Pattern *regexp.Regexp
}

var institutionPatterns = []InstitutionPattern{
	{models.InstitutionChase, regexp.MustCompile(`(?i)CHASE|JPMorgan Chase`)},
	{models.InstitutionBofA, regexp.MustCompile(`(?i)Bank\s+of\s+America|BOFA`)},
	{"wellsfargo", regexp.MustCompile(`(?i)Wells\s+Fargo`)},
	{"citi", regexp.MustCompile(`(?i)Citi(?:bank)?`)},
	{models.InstitutionAmex, regexp.MustCompile(`(?i)American\s+Express|AMEX`)},
	{"discover", regexp.MustCompile(`(?i)Discover\s+Card`)},
	{"capitalone", regexp.MustCompile(`(?i)Capital\s+One`)},
	{"usbank", regexp.MustCompile(`(?i)U\.?S\.?\s+Bank`)},
	{"pnc", regexp.MustCompile(`(?i)PNC\s+Bank`)},
	{"tdbank", regexp.MustCompile(`(?i)TD\s+Bank`)},
	{"regions", regexp.MustCompile(`(?i)Regions\s+Bank`)},
	{"suntrust", regexp.MustCompile(`(?i)SunTrust|Truist`)},
	{"barclays", regexp.MustCompile(`(?i)Barclays`)},
	{"ally", regexp.MustCompile(`(?i)Ally\s+Bank`)},
	{"schwab", regexp.MustCompile(`(?i)Charles\s+Schwab`)},
	{"fidelity", regexp.MustCompile(`(?i)Fidelity`)},
	{"vanguard", regexp.MustCompile(`(?i)Vanguard`)},
}

// DetectInstitution returns the identifier of the first institution whose
// pattern matches the statement text, or models.InstitutionUnknown.
func DetectInstitution(text string) string {
	for _, ip := range institutionPatterns {
		if ip.Pattern.MatchString(text) {
			return ip.ID
		}
	}
	return models.InstitutionUnknown
}

// InstitutionIDs returns the identifiers in declaration order. Useful for
// callers that enumerate supported institutions.
func InstitutionIDs() []string {
	ids := make([]string, len(institutionPatterns))
	for i, ip := range institutionPatterns {
		ids[i] = ip.ID
	}
	return ids
}
