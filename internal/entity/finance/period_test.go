package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnPreviousInJanuary_ShouldWrapToDecember(t *testing.T) {
	p := Period{Year: 2025, Month: time.January}
	assert.Equal(t, Period{Year: 2024, Month: time.December}, p.Previous())
}

func Test_OnPreviousMidYear_ShouldKeepYear(t *testing.T) {
	p := Period{Year: 2025, Month: time.June}
	assert.Equal(t, Period{Year: 2025, Month: time.May}, p.Previous())
}

func Test_OnNextInDecember_ShouldWrapToJanuary(t *testing.T) {
	p := Period{Year: 2025, Month: time.December}
	assert.Equal(t, Period{Year: 2026, Month: time.January}, p.Next())
}

func Test_OnContains_ShouldMatchYearAndMonthOnly(t *testing.T) {
	p := Period{Year: 2025, Month: time.March}
	assert.True(t, p.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_OnStartEnd_ShouldCoverWholeMonth(t *testing.T) {
	p := Period{Year: 2024, Month: time.February}
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, 29, p.End().Day())
	assert.True(t, p.Contains(p.End()))
}

func Test_OnParsePeriod_ShouldAcceptKeyFormat(t *testing.T) {
	p, err := ParsePeriod("2025-11")
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2025, Month: time.November}, p)
	assert.Equal(t, "2025-11", p.Key())
	assert.Equal(t, "Nov 2025", p.Label())

	_, err = ParsePeriod("11.2025")
	assert.Error(t, err)
}

func Test_OnBudgetPeriod_ShouldRejectMalformedMonth(t *testing.T) {
	p, ok := Budget{Month: "03", Year: 2025}.Period()
	assert.True(t, ok)
	assert.Equal(t, Period{Year: 2025, Month: time.March}, p)

	for _, m := range []string{"", "0", "13", "march"} {
		_, ok = Budget{Month: m, Year: 2025}.Period()
		assert.False(t, ok, m)
	}
}
