// Package validation runs consistency checks over a parsed statement.
// Extraction is best-effort, so inconsistencies produce warnings rather
// than rejections; the result is returned to the caller either way.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fjacquet/finstatement/internal/models"
)

// Check returns human-readable warnings for internal inconsistencies in a
// parsed statement. An empty slice means nothing looked wrong.
func Check(result models.StatementResult) []string {
	var warnings []string

	if result.Period.End.Before(result.Period.Start) {
		warnings = append(warnings, fmt.Sprintf(
			"period start %s is after period end %s",
			result.Period.Start.Format("2006-01-02"),
			result.Period.End.Format("2006-01-02")))
	}

	if result.Balance.Opening != nil && len(result.Transactions) > 0 {
		sum := decimal.Zero
		for _, tx := range result.Transactions {
			sum = sum.Add(tx.Amount)
		}
		expected := result.Balance.Opening.Add(sum)
		if !expected.Equal(result.Balance.Closing) {
			warnings = append(warnings, fmt.Sprintf(
				"opening balance %s plus transaction sum %s is %s, closing balance is %s",
				result.Balance.Opening, sum, expected, result.Balance.Closing))
		}
	}

	for i, tx := range result.Transactions {
		if tx.Description == "" {
			warnings = append(warnings, fmt.Sprintf("transaction %d has an empty description", i))
		}
	}

	return warnings
}
