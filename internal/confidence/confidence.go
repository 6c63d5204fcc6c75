// Package confidence scores how reliable each extracted field is. Scores
// are in [0.0, 1.0]; higher means the extraction matched a real pattern
// rather than resolving to a default.
package confidence

import (
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/extractor"
	"fjacquet/finstatement/internal/models"
)

// Score calculates per-field confidence plus an overall score, which is the
// unweighted mean of the four field scores.
func Score(info models.AccountInfo, period models.Period, balance models.Balance, transactions []models.Transaction, clock dateutils.Clock) models.ConfidenceMap {
	scores := models.ConfidenceMap{}

	if info.Number != models.UnknownAccountNumber {
		scores[models.ConfidenceAccountInfo] = 0.9
	} else {
		scores[models.ConfidenceAccountInfo] = 0.3
	}

	// A period that looks like the current-month fallback scores low even
	// if it was genuinely extracted; the two cases are indistinguishable.
	if extractor.DefaultPeriod(period, clock) {
		scores[models.ConfidencePeriod] = 0.3
	} else {
		scores[models.ConfidencePeriod] = 0.9
	}

	if balance.Opening != nil {
		scores[models.ConfidenceBalance] = 0.8
	} else {
		scores[models.ConfidenceBalance] = 0.5
	}

	if n := len(transactions); n > 0 {
		score := 0.3 + float64(n)*0.02
		if score > 0.9 {
			score = 0.9
		}
		scores[models.ConfidenceTransactions] = score
	} else {
		scores[models.ConfidenceTransactions] = 0.1
	}

	scores[models.ConfidenceOverall] = (scores[models.ConfidenceAccountInfo] +
		scores[models.ConfidencePeriod] +
		scores[models.ConfidenceBalance] +
		scores[models.ConfidenceTransactions]) / 4

	return scores
}
