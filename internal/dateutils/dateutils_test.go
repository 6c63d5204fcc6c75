package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = FixedClock(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))

func TestParseMonthDayYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"slash four-digit year", "01/15/2024", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"slash two-digit year", "01/15/24", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"dash four-digit year", "02-29-2024", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"dash two-digit year", "12-31-23", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", " 01/15/2024 ", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonthDayYear(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseMonthDayYearInvalid(t *testing.T) {
	for _, input := range []string{"", "13/45/2024", "2024-01-15", "January 15"} {
		_, err := ParseMonthDayYear(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseMonthDayYearOrFallsBackToClock(t *testing.T) {
	got := ParseMonthDayYearOr("99/99/9999", frozen)
	assert.True(t, frozen().Equal(got))

	got = ParseMonthDayYearOr("01/15/2024", frozen)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
}

func TestParseMonthDayAssumesClockYear(t *testing.T) {
	got, err := ParseMonthDay("01/15", frozen)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC).Equal(got))

	got, err = ParseMonthDay("12-31", frozen)
	require.NoError(t, err)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 2024, got.Year())
}

func TestParseMonthDayInvalid(t *testing.T) {
	_, err := ParseMonthDay("13/45", frozen)
	assert.Error(t, err)
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC))
	assert.True(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-03-20", ToISODate(frozen()))
}
