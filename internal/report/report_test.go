package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/finstatement/internal/batch"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
)

func resultWith(account string, start, end time.Time, overall float64, amounts ...float64) models.StatementResult {
	result := models.StatementResult{
		AccountInfo: models.AccountInfo{Number: account},
		Period:      models.Period{Start: start, End: end},
		Confidence:  models.ConfidenceMap{models.ConfidenceOverall: overall},
	}
	for _, amount := range amounts {
		result.Transactions = append(result.Transactions, models.Transaction{
			Date:        start,
			Description: "ENTRY",
			Amount:      decimal.NewFromFloat(amount),
		})
	}
	return result
}

func TestBuildRollsUpByAccount(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	feb29 := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	results := map[string]models.StatementResult{
		"jan.txt":   resultWith("xxxx-xxxx-xxxx-1234", jan1, jan31, 0.8, -50, 100),
		"feb.txt":   resultWith("xxxx-xxxx-xxxx-1234", feb1, feb29, 0.6, -25),
		"other.txt": resultWith("xxxx-xxxx-xxxx-9999", jan1, jan31, 0.9, 10),
	}

	log := logging.NewMockLogger()
	aggregator := batch.NewAggregator(log)
	groups := aggregator.GroupByAccount(results)

	summary := NewGenerator(log).Build(results, groups, aggregator)

	assert.Equal(t, 3, summary.Documents)
	require.Len(t, summary.Accounts, 2)

	first := summary.Accounts[0]
	assert.Equal(t, "xxxx-xxxx-xxxx-1234", first.Account)
	assert.Equal(t, 2, first.Documents)
	assert.Equal(t, "2024-01-01_2024-02-29", first.Period)
	assert.Equal(t, 3, first.Transactions)
	assert.Equal(t, "25.00", first.NetAmount)
	assert.InDelta(t, 0.7, first.Confidence, 1e-9)
}

func TestGenerateJSON(t *testing.T) {
	summary := RunSummary{
		Documents: 1,
		Accounts: []AccountSummary{
			{Account: "xxxx-xxxx-xxxx-1234", Documents: 1, Transactions: 2, NetAmount: "25.00", Confidence: 0.7},
		},
	}

	data, err := NewGenerator(logging.NewMockLogger()).Generate(summary, "json")
	require.NoError(t, err)

	var parsed RunSummary
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, summary, parsed)
}

func TestGenerateText(t *testing.T) {
	summary := RunSummary{
		Documents: 2,
		Accounts: []AccountSummary{
			{Account: "xxxx-xxxx-xxxx-1234", Documents: 2, Period: "2024-01-01_2024-02-29", Transactions: 3, NetAmount: "25.00", Confidence: 0.7},
		},
	}

	data, err := NewGenerator(logging.NewMockLogger()).Generate(summary, "text")
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "2 document(s), 1 account(s)")
	assert.Contains(t, text, "xxxx-xxxx-xxxx-1234 (2024-01-01_2024-02-29)")
	assert.Contains(t, text, "net amount:   25.00")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := NewGenerator(logging.NewMockLogger()).Generate(RunSummary{}, "xml")
	assert.Error(t, err)
}
