package txparser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/finstatement/internal/categorizer"
	"fjacquet/finstatement/internal/dateutils"
	"fjacquet/finstatement/internal/logging"
	"fjacquet/finstatement/internal/models"
)

var frozen = dateutils.FixedClock(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))

func newTestExtractor() *Extractor {
	log := logging.NewMockLogger()
	return NewExtractor(categorizer.NewDefault(log), frozen, log)
}

func TestTransactionSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains string
		excludes string
	}{
		{
			name:     "header to terminator",
			text:     "Intro\nTRANSACTIONS\n01/15 FOO $1.00\nACCOUNT SUMMARY\n01/16 BAR $2.00",
			contains: "01/15 FOO",
			excludes: "01/16 BAR",
		},
		{
			name:     "earliest terminator wins",
			text:     "Transactions\n01/15 FOO $1.00\nTOTAL $1.00\nSUMMARY",
			contains: "01/15 FOO",
			excludes: "TOTAL",
		},
		{
			name:     "header without terminator runs to end",
			text:     "Account Activity\n01/15 FOO $1.00",
			contains: "01/15 FOO",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			section := TransactionSection(tc.text)
			assert.Contains(t, section, tc.contains)
			if tc.excludes != "" {
				assert.NotContains(t, section, tc.excludes)
			}
		})
	}
}

func TestTransactionSectionNoHeader(t *testing.T) {
	text := "01/15 FOO $1.00\n01/16 BAR $2.00"
	assert.Equal(t, text, TransactionSection(text))
}

func TestChaseCreditCard(t *testing.T) {
	text := "TRANSACTIONS\n" +
		"01/15 STARBUCKS COFFEE 4512 $5.75\n" +
		"01/16 PAYMENT THANK YOU -$100.00\n"

	txs := newTestExtractor().Extract(text, models.InstitutionChase, models.TypeCreditCard)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, "STARBUCKS COFFEE 4512", txs[0].Description)
	assert.True(t, decimal.NewFromFloat(5.75).Equal(txs[0].Amount))
	assert.Nil(t, txs[0].Category)

	assert.Equal(t, "PAYMENT THANK YOU", txs[1].Description)
	assert.True(t, decimal.NewFromFloat(-100).Equal(txs[1].Amount))
}

func TestBofABank(t *testing.T) {
	text := "Account Activity\n" +
		"03/01/2024 CHECK FROM EMPLOYER $500.00\n" +
		"03/02/24 GROCERY OUTLET -$60.25\n"

	txs := newTestExtractor().Extract(text, models.InstitutionBofA, models.TypeBank)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.True(t, decimal.NewFromFloat(500).Equal(txs[0].Amount))
	assert.Nil(t, txs[0].Category)

	// Two-digit year layout.
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), txs[1].Date)
	assert.True(t, decimal.NewFromFloat(-60.25).Equal(txs[1].Amount))
}

// An unsigned Amex amount is a charge and stored negative; a token with an
// explicit sign is stored as given.
func TestAmexSignConvention(t *testing.T) {
	text := "Purchases and Other Charges\n" +
		"01/15/2024 WHOLEFDS NYC $50.00\n" +
		"01/20/2024 PAYMENT RECEIVED -$25.00\n" +
		"01/22/2024 REFUND ISSUED +$10.00\n"

	txs := newTestExtractor().Extract(text, models.InstitutionAmex, models.TypeCreditCard)
	require.Len(t, txs, 3)

	assert.True(t, decimal.NewFromFloat(-50).Equal(txs[0].Amount))
	assert.True(t, decimal.NewFromFloat(-25).Equal(txs[1].Amount))
	assert.True(t, decimal.NewFromFloat(10).Equal(txs[2].Amount))
	assert.Nil(t, txs[0].Category)
}

func TestGenericCategorizes(t *testing.T) {
	text := "01/15 WHOLEFDS ABC 12345 -$50.00"

	txs := newTestExtractor().Extract(text, models.InstitutionUnknown, models.TypeUnknown)
	require.Len(t, txs, 1)

	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, "WHOLEFDS ABC 12345", txs[0].Description)
	assert.True(t, decimal.NewFromFloat(-50).Equal(txs[0].Amount))
	require.NotNil(t, txs[0].Category)
	assert.Equal(t, "grocery", *txs[0].Category)
}

func TestGenericDashDates(t *testing.T) {
	text := "02-10 HARDWARE SUPPLY 45.00\n02-11-2024 LUMBER YARD 12.50"

	txs := newTestExtractor().Extract(text, models.InstitutionUnknown, models.TypeBank)
	require.Len(t, txs, 2)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, time.Date(2024, time.February, 11, 0, 0, 0, 0, time.UTC), txs[1].Date)
}

// Slash-date matches are appended before dash-date matches regardless of
// their position in the text.
func TestGenericSlashShapeFirst(t *testing.T) {
	text := "02-10 FIRST IN TEXT 1.00\n03/05 SECOND IN TEXT 2.00"

	txs := newTestExtractor().Extract(text, models.InstitutionUnknown, models.TypeBank)
	require.Len(t, txs, 2)
	assert.Equal(t, "SECOND IN TEXT", txs[0].Description)
	assert.Equal(t, "FIRST IN TEXT", txs[1].Description)
}

func TestGenericUnparsableDateFallsBackToNow(t *testing.T) {
	text := "13/45/2024 MYSTERY VENDOR 20.00"

	txs := newTestExtractor().Extract(text, models.InstitutionUnknown, models.TypeBank)
	require.Len(t, txs, 1)
	assert.Equal(t, frozen(), txs[0].Date)
}

// A specific strategy that matches nothing falls through to the generic
// strategy, which also categorizes.
func TestSpecificStrategyFallsBackToGeneric(t *testing.T) {
	// No dollar sign, so the Chase line format never matches.
	text := "Transactions\n01/15 CORNER SHOP 50.00\n"

	txs := newTestExtractor().Extract(text, models.InstitutionChase, models.TypeCreditCard)
	require.Len(t, txs, 1)
	assert.Equal(t, "CORNER SHOP", txs[0].Description)
	require.NotNil(t, txs[0].Category)
	assert.Equal(t, "shopping", *txs[0].Category)
}

// A known institution with the wrong statement type does not get that
// institution's strategy.
func TestStrategyKeyNeedsBothParts(t *testing.T) {
	text := "01/15 LOCAL VENDOR 10.00"

	txs := newTestExtractor().Extract(text, models.InstitutionChase, models.TypeBank)
	require.Len(t, txs, 1)
	assert.Equal(t, "LOCAL VENDOR", txs[0].Description)
}

func TestEmptyTextYieldsNoTransactions(t *testing.T) {
	txs := newTestExtractor().Extract("", models.InstitutionUnknown, models.TypeUnknown)
	assert.Empty(t, txs)
}
