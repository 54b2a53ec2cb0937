package interest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func days(n int) time.Time {
	return start.AddDate(0, 0, n)
}

func TestProject_BelowThreshold(t *testing.T) {
	r, err := Project(decimal.NewFromInt(100000), start, days(30))
	require.NoError(t, err)
	assert.Equal(t, "0.00", r.TotalInvested.StringFixed(2))
	assert.Equal(t, "1237.50", r.Remaining.StringFixed(2))
}

func TestProject_OneReinvestRound(t *testing.T) {
	r, err := Project(decimal.NewFromInt(10_000_000), start, days(30))
	require.NoError(t, err)
	assert.Equal(t, "123750.00", r.TotalInvested.StringFixed(2))
	assert.Equal(t, "1531.41", r.Remaining.StringFixed(2))
}

func TestProject_MultiMonthFactor(t *testing.T) {
	// 60 天：月利率 1.35%，月数 2，单轮系数 0.027
	r, err := Project(decimal.NewFromInt(1_000_000), start, days(60))
	require.NoError(t, err)
	assert.Equal(t, "27000.00", r.TotalInvested.StringFixed(2))
	assert.Equal(t, "729.00", r.Remaining.StringFixed(2))
}

func TestProject_FractionalDays(t *testing.T) {
	// 30.5 天落入 60 天档位
	end := days(30).Add(12 * time.Hour)
	r, err := Project(decimal.NewFromInt(1_000_000), start, end)
	require.NoError(t, err)
	assert.Equal(t, "13725.00", r.TotalInvested.StringFixed(2))
	assert.Equal(t, "188.38", r.Remaining.StringFixed(2))
}

func TestProject_BeyondSchedule(t *testing.T) {
	r, err := Project(decimal.NewFromInt(10_000_000), start, days(400))
	require.NoError(t, err)
	assert.True(t, r.TotalInvested.IsZero())
	assert.True(t, r.Remaining.IsZero())
}

func TestProject_InvalidInterval(t *testing.T) {
	_, err := Project(decimal.NewFromInt(1000), start, start)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Project(decimal.NewFromInt(1000), start, days(-1))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestProject_Deterministic(t *testing.T) {
	p := decimal.RequireFromString("2500000.55")
	end := days(200).Add(3 * time.Hour)
	first, err := Project(p, start, end)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Project(p, start, end)
		require.NoError(t, err)
		assert.True(t, first.TotalInvested.Equal(again.TotalInvested))
		assert.True(t, first.Remaining.Equal(again.Remaining))
	}
}

func TestDefaultEndDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.FixedZone("CST", 8*3600))
	end := DefaultEndDate(now)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestDays(t *testing.T) {
	assert.Equal(t, "30", Days(start, days(30)).String())
	assert.Equal(t, "0.5", Days(start, start.Add(12*time.Hour)).String())
}
