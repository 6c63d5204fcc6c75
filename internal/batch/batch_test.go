package batch

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/finstatement/internal/categorizer"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
	"fjacquet/finstatement/internal/parser"
)

var frozen = dateutils.FixedClock(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))

const chaseText = `CHASE CREDIT CARD STATEMENT
Account Number: ****1234
Statement Period: 01/01/2024 to 01/31/2024
TRANSACTIONS
01/15 STARBUCKS COFFEE $5.75
`

const bofaText = `Bank of America checking statement
Account Number: ****9876
Statement Period: 01/01/2024 to 01/31/2024
Account Activity
01/05/2024 PAYROLL DEPOSIT $1,500.00
`

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTestRunner(load Loader) (*Runner, *logging.MockLogger) {
	log := logging.NewMockLogger()
	p := parser.New(categorizer.NewDefault(log), frozen, log)
	return NewRunner(p, load, log), log
}

func mapLoader(docs map[string]string) Loader {
	return func(path string) string { return docs[path] }
}

func TestRunSequential(t *testing.T) {
	docs := map[string]string{
		"chase.pdf": chaseText,
		"bofa.pdf":  bofaText,
	}
	runner, _ := newTestRunner(mapLoader(docs))

	results := runner.Run(context.Background(), []string{"chase.pdf", "bofa.pdf"}, Options{})
	require.Len(t, results, 2)

	assert.Equal(t, models.InstitutionChase, results["chase.pdf"].AccountInfo.Institution)
	assert.Equal(t, models.InstitutionBofA, results["bofa.pdf"].AccountInfo.Institution)
}

func TestRunParallel(t *testing.T) {
	docs := make(map[string]string)
	paths := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		path := string(rune('a'+i)) + ".pdf"
		docs[path] = chaseText
		paths = append(paths, path)
	}
	runner, _ := newTestRunner(mapLoader(docs))

	results := runner.Run(context.Background(), paths, Options{Parallel: true, Workers: 4})
	assert.Len(t, results, 20)
}

func TestRunTimeoutOmitsDocument(t *testing.T) {
	load := func(path string) string {
		if path == "slow.pdf" {
			time.Sleep(500 * time.Millisecond)
		}
		return chaseText
	}
	runner, log := newTestRunner(load)

	results := runner.Run(context.Background(), []string{"slow.pdf", "fast.pdf"},
		Options{Timeout: 50 * time.Millisecond})

	assert.Len(t, results, 1)
	assert.Contains(t, results, "fast.pdf")
	assert.True(t, log.HasEntry("ERROR", "document failed"))
}

func TestRunPanickingLoaderOmitsDocument(t *testing.T) {
	load := func(path string) string {
		if path == "bad.pdf" {
			panic("loader exploded")
		}
		return chaseText
	}
	runner, log := newTestRunner(load)

	results := runner.Run(context.Background(), []string{"bad.pdf", "good.pdf"}, Options{})

	assert.Len(t, results, 1)
	assert.Contains(t, results, "good.pdf")
	assert.True(t, log.HasEntry("ERROR", "document failed"))
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, _ := newTestRunner(mapLoader(nil))
	results := runner.Run(ctx, []string{"a.pdf", "b.pdf"}, Options{})
	assert.Empty(t, results)
}

func TestGroupByAccount(t *testing.T) {
	jan := models.Period{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
	feb := models.Period{
		Start: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	}

	results := map[string]models.StatementResult{
		"jan.pdf": {AccountInfo: models.AccountInfo{Number: "xxxx-xxxx-xxxx-1234"}, Period: jan},
		"feb.pdf": {AccountInfo: models.AccountInfo{Number: "xxxx-xxxx-xxxx-1234"}, Period: feb},
		"other.pdf": {
			AccountInfo: models.AccountInfo{Number: "xxxx-xxxx-xxxx-9876"},
			Period:      jan,
		},
	}

	groups := NewAggregator(logging.NewMockLogger()).GroupByAccount(results)
	require.Len(t, groups, 2)

	assert.Equal(t, "xxxx-xxxx-xxxx-1234", groups[0].Account)
	assert.Equal(t, []string{"feb.pdf", "jan.pdf"}, groups[0].Documents)
	assert.Equal(t, "2024-01-01_2024-02-29", groups[0].Period.String())

	assert.Equal(t, "xxxx-xxxx-xxxx-9876", groups[1].Account)
}

func TestMergeTransactionsSortsAndFlagsDuplicates(t *testing.T) {
	day := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

	results := map[string]models.StatementResult{
		"a.pdf": {
			AccountInfo: models.AccountInfo{Number: "xxxx-xxxx-xxxx-1234"},
			Transactions: []models.Transaction{
				{Date: later, Description: "RENT", Amount: decimalFrom(t, "-1200.00")},
				{Date: day, Description: "COFFEE", Amount: decimalFrom(t, "-4.50")},
			},
		},
		"b.pdf": {
			AccountInfo: models.AccountInfo{Number: "xxxx-xxxx-xxxx-1234"},
			Transactions: []models.Transaction{
				{Date: day, Description: "COFFEE", Amount: decimalFrom(t, "-4.50")},
			},
		},
	}

	log := logging.NewMockLogger()
	agg := NewAggregator(log)
	groups := agg.GroupByAccount(results)
	require.Len(t, groups, 1)

	merged := agg.MergeTransactions(results, groups[0])
	require.Len(t, merged, 3)
	assert.Equal(t, "COFFEE", merged[0].Description)
	assert.Equal(t, "RENT", merged[2].Description)
	assert.True(t, log.HasEntry("WARN", "found potential duplicate transactions"))
}
