// Package dateutils provides the date operations used by the extraction
// pipeline. US statements write dates month-first, so all parsing here is
// month/day ordered.
package dateutils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/finstatement/internal/parsererror"
)

// Date layout constants used throughout the application.
const (
	DateLayoutISO         = "2006-01-02"
	DateLayoutUS          = "01/02/2006"
	DateLayoutUSShortYear = "01/02/06"
	DateLayoutUSDash      = "01-02-2006"
	DateLayoutUSDashShort = "01-02-06"
)

// Clock supplies the current time. The extractors take a Clock instead of
// calling time.Now directly so date-fallback paths can be tested with a
// frozen clock.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// ParseMonthDayYear parses a month-first date token, trying the 4-digit
// year layout before the 2-digit one. The separator may be a slash or a
// dash.
func ParseMonthDayYear(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	layouts := []string{DateLayoutUS, DateLayoutUSShortYear}
	if strings.Contains(dateStr, "-") {
		layouts = []string{DateLayoutUSDash, DateLayoutUSDashShort}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &parsererror.DataExtractionError{Field: "date", Value: dateStr, Err: errors.New("no layout matched")}
}

// ParseMonthDayYearOr parses a month-first date token, falling back to the
// clock's current time when the token fits neither year layout.
func ParseMonthDayYearOr(dateStr string, clock Clock) time.Time {
	if t, err := ParseMonthDayYear(dateStr); err == nil {
		return t
	}
	return clock()
}

// ParseMonthDay parses a year-less date token ("01/15" or "01-15"),
// assuming the clock's current year. Statements routinely elide the year
// on transaction lines.
func ParseMonthDay(dateStr string, clock Clock) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	sep := "/"
	if strings.Contains(dateStr, "-") {
		sep = "-"
	}
	full := fmt.Sprintf("%s%s%d", dateStr, sep, clock().Year())

	layout := DateLayoutUS
	if sep == "-" {
		layout = DateLayoutUSDash
	}
	t, err := time.Parse(layout, full)
	if err != nil {
		return time.Time{}, &parsererror.DataExtractionError{Field: "date", Value: dateStr, Err: err}
	}
	return t, nil
}

// StartOfMonth returns midnight on the first day of the month of date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// ToISODate formats a time.Time as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
