package txparser

import (
	"regexp"
	"strings"
	"time"

	"fjacquet/finstatement/internal/currencyutils"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/models"
)

const genericTail = `\s+([A-Za-z0-9\s.,&'"()-]+?)\s+([-+]?\$?[\d,]+\.\d{2})`

// Generic line shapes, tried in order: slash-separated dates first, then
// dash-separated. The year component is optional in both.
var genericLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}/\d{1,2}(?:/\d{2,4})?)` + genericTail),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}(?:-\d{2,4})?)` + genericTail),
}

// genericStrategy handles every institution without a dedicated line
// format. It is the only strategy that categorizes its output.
type genericStrategy struct {
	categorizer Categorizer
}

func (genericStrategy) Name() string { return "generic" }

func (g genericStrategy) Extract(section string, clock dateutils.Clock) []models.Transaction {
	var transactions []models.Transaction
	for _, pattern := range genericLinePatterns {
		for _, m := range pattern.FindAllStringSubmatch(section, -1) {
			amount, err := currencyutils.ParseAmount(m[3])
			if err != nil {
				continue
			}

			description := strings.TrimSpace(m[2])

			tx := models.Transaction{
				Date:        parseGenericDate(m[1], clock),
				Description: description,
				Amount:      amount,
			}
			if g.categorizer != nil {
				if category, ok := g.categorizer.Categorize(description); ok {
					tx.Category = &category
				}
			}
			transactions = append(transactions, tx)
		}
	}
	return transactions
}

// parseGenericDate parses a date token that may or may not carry a year.
// The year defaults to the clock's current year when absent; a token that
// fits no layout falls back to the clock's current time.
func parseGenericDate(dateStr string, clock dateutils.Clock) time.Time {
	sep := "/"
	if strings.Contains(dateStr, "-") {
		sep = "-"
	}

	if strings.Count(dateStr, sep) > 1 {
		return dateutils.ParseMonthDayYearOr(dateStr, clock)
	}

	date, err := dateutils.ParseMonthDay(dateStr, clock)
	if err != nil {
		return clock()
	}
	return date
}
