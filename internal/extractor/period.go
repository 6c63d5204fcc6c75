package extractor

import (
	"regexp"

	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/models"
)

const dateToken = `(\d{1,2}/\d{1,2}/\d{2,4})`

// Two-date period phrasings, tried in order. Each captures a start and an
// end date token.
var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)statement\s+period:?\s+` + dateToken + `\s+(?:to|through)\s+` + dateToken),
	regexp.MustCompile(`(?i)from\s+` + dateToken + `\s+to\s+` + dateToken),
	regexp.MustCompile(`(?i)billing\s+period:?\s+` + dateToken + `\s+(?:to|through)\s+` + dateToken),
	regexp.MustCompile(`(?i)(?:period|cycle)(?:\s+covered)?:?\s+` + dateToken + `\s*[-–]\s*` + dateToken),
}

// ExtractPeriod extracts the statement period. Each captured date is parsed
// month/day/4-digit-year first, then 2-digit-year; a token that fits
// neither falls back to the clock's current time. When no phrasing matches
// at all, the period defaults to [first day of the current month, now] —
// the confidence scorer relies on that exact default to detect a missing
// period.
func ExtractPeriod(text string, clock dateutils.Clock) models.Period {
	for _, pattern := range periodPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return models.Period{
				Start: dateutils.ParseMonthDayYearOr(m[1], clock),
				End:   dateutils.ParseMonthDayYearOr(m[2], clock),
			}
		}
	}

	now := clock()
	return models.Period{
		Start: dateutils.StartOfMonth(now),
		End:   now,
	}
}

// DefaultPeriod reports whether p looks like the no-match fallback period
// for the clock's current month: a start at midnight on the first of the
// current month.
func DefaultPeriod(p models.Period, clock dateutils.Clock) bool {
	now := clock()
	return p.Start.Year() == now.Year() &&
		p.Start.Month() == now.Month() &&
		p.Start.Day() == 1
}
