package txparser

import (
	"regexp"
	"strings"

	"fjacquet/finstatement/internal/currencyutils"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/models"
)

// Bank of America checking lines carry a full date: MM/DD/YY[YY].
var bofaLinePattern = regexp.MustCompile(`(\d{2}/\d{2}/\d{2,4})\s+([A-Za-z0-9\s.,&'"-]+?)\s+([-+]?\$[\d,]+\.\d{2})`)

type bofaStrategy struct{}

func (bofaStrategy) Name() string { return "bofa_bank" }

func (bofaStrategy) Extract(section string, clock dateutils.Clock) []models.Transaction {
	var transactions []models.Transaction
	for _, m := range bofaLinePattern.FindAllStringSubmatch(section, -1) {
		amount, err := currencyutils.ParseAmount(m[3])
		if err != nil {
			continue
		}

		transactions = append(transactions, models.Transaction{
			Date:        dateutils.ParseMonthDayYearOr(m[1], clock),
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
		})
	}
	return transactions
}
