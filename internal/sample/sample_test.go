package sample

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/finstatement/internal/categorizer"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
	"fjacquet/finstatement/internal/parser"
	"fjacquet/finstatement/internal/validation"
)

var testClock = dateutils.FixedClock(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))

func testParser(t *testing.T) *parser.StatementParser {
	t.Helper()
	log := logging.NewMockLogger()
	return parser.New(categorizer.NewDefault(log), testClock, log)
}

func TestChaseCreditCardParses(t *testing.T) {
	text := NewGenerator(1, testClock).ChaseCreditCard(8)

	result := testParser(t).ParseText(text)

	assert.Equal(t, models.InstitutionChase, result.AccountInfo.Institution)
	assert.Equal(t, models.TypeCreditCard, result.AccountInfo.Type)
	assert.True(t, strings.HasPrefix(result.AccountInfo.Number, "xxxx-xxxx-xxxx-"))
	assert.Equal(t, time.February, result.Period.Start.Month())
	assert.Equal(t, 15, result.Period.End.Day())
	require.NotNil(t, result.Balance.Opening)
	assert.Len(t, result.Transactions, 8)
}

func TestChaseCreditCardReconciles(t *testing.T) {
	text := NewGenerator(2, testClock).ChaseCreditCard(12)

	result := testParser(t).ParseText(text)

	require.Len(t, result.Transactions, 12)
	assert.Empty(t, validation.Check(result))
}

func TestBofACheckingParses(t *testing.T) {
	text := NewGenerator(3, testClock).BofAChecking(10)

	result := testParser(t).ParseText(text)

	assert.Equal(t, models.InstitutionBofA, result.AccountInfo.Institution)
	assert.Equal(t, models.TypeBank, result.AccountInfo.Type)
	assert.Equal(t, 1, result.Period.Start.Day())
	assert.Equal(t, 25, result.Period.End.Day())
	require.Len(t, result.Transactions, 10)
	assert.Empty(t, validation.Check(result))
}

func TestGeneratorIsDeterministic(t *testing.T) {
	first := NewGenerator(42, testClock).ChaseCreditCard(5)
	second := NewGenerator(42, testClock).ChaseCreditCard(5)
	assert.Equal(t, first, second)
}

func TestGeneratorsDiverge(t *testing.T) {
	first := NewGenerator(1, testClock).BofAChecking(5)
	second := NewGenerator(2, testClock).BofAChecking(5)
	assert.NotEqual(t, first, second)
}

func TestTransactionDatesStayInPeriod(t *testing.T) {
	text := NewGenerator(7, testClock).BofAChecking(25)

	result := testParser(t).ParseText(text)

	require.Len(t, result.Transactions, 25)
	for _, tx := range result.Transactions {
		assert.False(t, tx.Date.Before(result.Period.Start), "transaction %s before period start", tx.Description)
		assert.False(t, tx.Date.After(result.Period.End), "transaction %s after period end", tx.Description)
	}
}
