package db

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/memory"
	"adpulse/internal/core/domain"
)

func TestSeed(t *testing.T) {
	store := memory.NewMetricStore()
	today := domain.MustParseDate("2024-06-30")
	campaigns := []domain.Campaign{{ID: "a"}, {ID: "b"}}

	n, err := Seed(context.Background(), store, campaigns, 14, today, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 28, n)

	got, err := store.RecordsInWindow(context.Background(), "a", 100)
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.True(t, got[13].Date.Equal(today))
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Spend, 200.0)
		assert.LessOrEqual(t, r.Spend, 500.0)
		assert.LessOrEqual(t, r.Clicks, r.Impressions)
		assert.LessOrEqual(t, r.Conversions, r.Clicks)
		require.True(t, r.HasSlot())
		assert.Equal(t, int(r.Date.Weekday()), *r.DayOfWeek)
	}
}
