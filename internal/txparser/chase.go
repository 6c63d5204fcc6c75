package txparser

import (
	"regexp"
	"strings"

	"fjacquet/finstatement/internal/currencyutils"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/models"
)

// Chase credit-card lines elide the year: MM/DD DESCRIPTION ±$AMOUNT.
var chaseLinePattern = regexp.MustCompile(`(\d{2}/\d{2})\s+([A-Za-z0-9\s.,&'"-]+?)\s+([-+]?\$[\d,]+\.\d{2})`)

type chaseStrategy struct{}

func (chaseStrategy) Name() string { return "chase_credit_card" }

func (chaseStrategy) Extract(section string, clock dateutils.Clock) []models.Transaction {
	var transactions []models.Transaction
	for _, m := range chaseLinePattern.FindAllStringSubmatch(section, -1) {
		date, err := dateutils.ParseMonthDay(m[1], clock)
		if err != nil {
			date = clock()
		}

		amount, err := currencyutils.ParseAmount(m[3])
		if err != nil {
			continue
		}

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
		})
	}
	return transactions
}
