package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/memory"
	"adpulse/internal/core/domain"
)

func f64(v float64) *float64 { return &v }

func seedStore(t *testing.T) *memory.MetricStore {
	t.Helper()
	s := memory.NewMetricStore()
	ctx := context.Background()
	day := domain.MustParseDate("2024-01-01")
	_, err := s.Upsert(ctx, "A", day, domain.MetricPatch{Spend: f64(100), ConversionValue: f64(400)})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, "B", day, domain.MetricPatch{Spend: f64(300), ConversionValue: f64(300)})
	require.NoError(t, err)
	return s
}

var campaigns = []domain.Campaign{
	{ID: "A", ClientID: "c1", Platform: "google"},
	{ID: "B", ClientID: "c1", Platform: "facebook"},
	{ID: "C", ClientID: "c1"}, // no records, no platform
	{ID: "D", ClientID: "c2", Platform: "google"},
}

func TestRollupByClientRecomputesRatios(t *testing.T) {
	r := NewResolver(seedStore(t))

	ru, err := r.RollupByClient(context.Background(), "c1", campaigns, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, ru.CampaignCount)
	assert.Equal(t, 1.75, ru.Aggregate.ROAS)
	assert.Equal(t, 400.0, ru.Aggregate.TotalSpend)
	require.Len(t, ru.Campaigns, 3)
	assert.Equal(t, 4.0, ru.Campaigns[0].ROAS)
}

func TestRollupEmptyGroup(t *testing.T) {
	r := NewResolver(seedStore(t))

	ru, err := r.RollupByClient(context.Background(), "ghost", campaigns, 30)
	require.NoError(t, err)
	assert.Zero(t, ru.CampaignCount)
	assert.Equal(t, domain.Aggregate{}, ru.Aggregate)
}

func TestRollupByPlatform(t *testing.T) {
	r := NewResolver(seedStore(t))
	ctx := context.Background()

	ru, err := r.RollupByPlatform(ctx, "google", campaigns, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, ru.CampaignCount)
	assert.Equal(t, 100.0, ru.Aggregate.TotalSpend)

	ru, err = r.RollupByPlatform(ctx, domain.UnknownPlatform, campaigns, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, ru.CampaignCount)
	assert.Equal(t, "C", ru.Campaigns[0].ID)
}

func TestPlatformDistribution(t *testing.T) {
	r := NewResolver(seedStore(t))

	dist, err := r.PlatformDistribution(context.Background(), campaigns, 30)
	require.NoError(t, err)
	require.Len(t, dist, 3)
	assert.Equal(t, "google", dist[0].Key)
	assert.Equal(t, "facebook", dist[1].Key)
	assert.Equal(t, domain.UnknownPlatform, dist[2].Key)
	assert.Equal(t, 300.0, dist[1].Aggregate.TotalSpend)
}

func TestPlatformTagsFoldCase(t *testing.T) {
	s := memory.NewMetricStore()
	ctx := context.Background()
	day := domain.MustParseDate("2024-01-01")
	_, err := s.Upsert(ctx, "g1", day, domain.MetricPatch{Spend: f64(100)})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, "g2", day, domain.MetricPatch{Spend: f64(50)})
	require.NoError(t, err)

	mixed := []domain.Campaign{
		{ID: "g1", Platform: "google"},
		{ID: "g2", Platform: " Google "},
		{ID: "x", Platform: "   "},
	}
	r := NewResolver(s)

	dist, err := r.PlatformDistribution(ctx, mixed, 30)
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.Equal(t, "google", dist[0].Key)
	assert.Equal(t, 2, dist[0].CampaignCount)
	assert.Equal(t, 150.0, dist[0].Aggregate.TotalSpend)
	assert.Equal(t, domain.UnknownPlatform, dist[1].Key)

	ru, err := r.RollupByPlatform(ctx, "GOOGLE", mixed, 30)
	require.NoError(t, err)
	assert.Equal(t, "google", ru.Key)
	assert.Equal(t, dist[0].Aggregate, ru.Aggregate)
}

type failingReader struct{}

func (failingReader) RecordsInWindow(context.Context, string, int) ([]domain.DailyMetricRecord, error) {
	return nil, errors.New("boom")
}

func (failingReader) RecordsBetween(context.Context, string, domain.Date, domain.Date) ([]domain.DailyMetricRecord, error) {
	return nil, errors.New("boom")
}

func (failingReader) AllCampaignIDs(context.Context) ([]string, error) {
	return nil, errors.New("boom")
}

func TestRollupPropagatesStoreErrors(t *testing.T) {
	r := NewResolver(failingReader{})
	_, err := r.RollupByClient(context.Background(), "c1", campaigns, 30)
	assert.Error(t, err)
}
