// Package txparser extracts the transaction list from statement text. A
// small closed set of named strategies covers the institutions whose line
// format is known; everything else goes through the generic strategy, which
// is also the fallback when a specific strategy matches nothing.
package txparser

import "regexp"

// Transaction section headers, tried in order. The first header that
// appears in the text anchors the section.
var sectionHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)transactions?`),
	regexp.MustCompile(`(?i)account\s+activity`),
	regexp.MustCompile(`(?i)payments\s+and\s+(?:other\s+)?credits`),
	regexp.MustCompile(`(?i)purchases\s+and\s+(?:other\s+)?charges`),
}

// Keywords that end the transaction section.
var sectionTerminator = regexp.MustCompile(`(?i)SUMMARY|TOTAL|BALANCE|STATEMENT|INFORMATION`)

// TransactionSection narrows the text to the transaction-bearing span: from
// the first section header through the first terminating keyword after it,
// or to the end of the text if no terminator follows. When no header
// matches at all the whole text is the span.
func TransactionSection(text string) string {
	for _, header := range sectionHeaderPatterns {
		loc := header.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if term := sectionTerminator.FindStringIndex(text[loc[1]:]); term != nil {
			return text[loc[0] : loc[1]+term[0]]
		}
		return text[loc[0]:]
	}
	return text
}
