package txparser

import (
	"regexp"
	"strings"

	"fjacquet/finstatement/internal/currencyutils"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/models"
)

// American Express shares the Bank of America line shape but prints charges
// as unsigned amounts.
var amexLinePattern = regexp.MustCompile(`(\d{2}/\d{2}/\d{2,4})\s+([A-Za-z0-9\s.,&'"-]+?)\s+([-+]?\$[\d,]+\.\d{2})`)

type amexStrategy struct{}

func (amexStrategy) Name() string { return "amex_credit_card" }

func (amexStrategy) Extract(section string, clock dateutils.Clock) []models.Transaction {
	var transactions []models.Transaction
	for _, m := range amexLinePattern.FindAllStringSubmatch(section, -1) {
		amount, err := currencyutils.ParseAmount(m[3])
		if err != nil {
			continue
		}

		// An unsigned token is a charge and stored negative; a token that
		// already carries a sign is stored as given.
		if !currencyutils.HasExplicitSign(m[3]) {
			amount = amount.Neg()
		}

		transactions = append(transactions, models.Transaction{
			Date:        dateutils.ParseMonthDayYearOr(m[1], clock),
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
		})
	}
	return transactions
}
