package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
)

func TestDailyTrendZeroFill(t *testing.T) {
	today := domain.MustParseDate("2024-06-10")
	got := DailyTrend(nil, 7, today)

	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Date.Equal(got[i-1].Date.AddDays(1)))
	}
	assert.True(t, got[6].Date.Equal(today))
	for _, p := range got {
		assert.Zero(t, p.Spend)
		assert.Zero(t, p.CPA)
	}
}

func TestDailyTrendMatchesByDate(t *testing.T) {
	today := domain.MustParseDate("2024-06-10")
	a := []domain.DailyMetricRecord{
		{Date: today, Spend: 30, Conversions: 3, Clicks: 10, Impressions: 100},
		{Date: today.AddDays(-2), Spend: 5.555, Conversions: 0},
		{Date: today.AddDays(-30), Spend: 1000, Conversions: 1}, // outside
	}
	b := []domain.DailyMetricRecord{
		{Date: today.AddDays(-2), Spend: 4.445, Conversions: 2},
		{Date: today, Spend: 10, Conversions: 1},
	}

	got := DailyTrend([][]domain.DailyMetricRecord{a, b}, 3, today)
	require.Len(t, got, 3)

	assert.Equal(t, 10.0, got[0].Spend)
	assert.Equal(t, int64(2), got[0].Conversions)
	assert.Equal(t, 5.0, got[0].CPA)

	assert.Zero(t, got[1].Spend)
	assert.Zero(t, got[1].CPA)

	assert.Equal(t, 40.0, got[2].Spend)
	assert.Equal(t, int64(4), got[2].Conversions)
	assert.Equal(t, 10.0, got[2].CPA)
	assert.Equal(t, int64(10), got[2].Clicks)
	assert.Equal(t, int64(100), got[2].Impressions)
}

func TestDailyTrendNonPositiveDays(t *testing.T) {
	assert.Empty(t, DailyTrend(nil, 0, domain.MustParseDate("2024-01-01")))
}
