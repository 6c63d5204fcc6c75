// Package textutils provides cleanup helpers for extracted statement text.
package textutils

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// NormalizeNewlines converts Windows and old-Mac line endings to plain LF
// so the extraction patterns only ever see \n.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// CollapseSpaces reduces runs of spaces and tabs to a single space and
// trims the ends. PDF extraction tends to pad columns with spacing that
// would otherwise leak into descriptions.
func CollapseSpaces(line string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
}
