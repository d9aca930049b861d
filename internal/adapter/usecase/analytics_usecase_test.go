package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/adapter/memory"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/engine"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func intp(v int) *int        { return &v }

var (
	fixedNow = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

	testClients = []domain.Client{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Globex"},
	}
	testCampaigns = []domain.Campaign{
		{ID: "A", ClientID: "c1", Name: "Search", Platform: "google"},
		{ID: "B", ClientID: "c2", Name: "Social", Platform: "facebook"},
	}
)

// newAnalytics returns a usecase over a store holding two records of
// campaign A (one in the current 7 day window, one in the previous) and
// one record of a campaign missing from the reference data.
func newAnalytics(t *testing.T) (*AnalyticsUseCase, *mocks.MockReferenceRepository) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewMetricStore()

	_, err := store.Upsert(ctx, "A", domain.MustParseDate("2024-01-10"), domain.MetricPatch{
		Spend: f64(100), Impressions: i64(1000), Clicks: i64(50),
		Conversions: i64(5), ConversionValue: f64(500),
		DayOfWeek: intp(3), HourOfDay: intp(14),
	})
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "A", domain.MustParseDate("2024-01-03"), domain.MetricPatch{
		Spend: f64(50), Conversions: i64(5), ConversionValue: f64(100),
	})
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "orphan", domain.MustParseDate("2024-01-09"), domain.MetricPatch{
		Spend: f64(20), Conversions: i64(1),
	})
	require.NoError(t, err)

	refs := mocks.NewMockReferenceRepository(t)
	svc := NewAnalyticsUseCase(refs, store, engine.DefaultHeatmapScale)
	svc.now = func() time.Time { return fixedNow }
	return svc, refs
}

func TestListCampaigns(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil)

	got, err := svc.ListCampaigns(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, 150.0, got[0].TotalSpend)
	assert.Equal(t, int64(10), got[0].TotalConversions)
	assert.Equal(t, domain.Aggregate{}, got[1].Aggregate)
}

func TestGetCampaign(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().GetCampaign(mock.Anything, "A").Return(testCampaigns[0], nil)

	got, err := svc.GetCampaign(context.Background(), "A", 1)
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.Equal(t, domain.MustParseDate("2024-01-10"), got.Records[0].Date)
	assert.Equal(t, 5.0, got.Aggregate.ROAS)
	assert.Equal(t, 5.0, got.Aggregate.CTR)
	assert.Equal(t, 20.0, got.Aggregate.CPA)
	assert.Equal(t, 2.0, got.Aggregate.CPC)
}

func TestGetCampaignNotFound(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().GetCampaign(mock.Anything, "ghost").Return(domain.Campaign{}, port.ErrNotFound)

	_, err := svc.GetCampaign(context.Background(), "ghost", 30)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestClientPerformance(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().ListClients(mock.Anything).Return(testClients, nil)
	refs.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil)

	got, err := svc.ClientPerformance(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Acme", got[0].Name)
	assert.Equal(t, 1, got[0].CampaignCount)
	assert.Equal(t, 150.0, got[0].Aggregate.TotalSpend)
	assert.Equal(t, 4.0, got[0].Aggregate.ROAS)

	assert.Equal(t, 1, got[1].CampaignCount)
	assert.Equal(t, domain.Aggregate{}, got[1].Aggregate)
}

func TestGetClient(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().GetClient(mock.Anything, "c1").Return(testClients[0], nil)
	refs.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil)

	got, err := svc.GetClient(context.Background(), "c1", 30)
	require.NoError(t, err)
	assert.Equal(t, "c1", got.Rollup.Key)
	require.Len(t, got.Rollup.Campaigns, 1)
	assert.Equal(t, "A", got.Rollup.Campaigns[0].ID)
}

func TestPlatformDistributionAndRollup(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil)
	ctx := context.Background()

	dist, err := svc.PlatformDistribution(ctx, 30)
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.Equal(t, "google", dist[0].Key)
	assert.Equal(t, 150.0, dist[0].Aggregate.TotalSpend)
	assert.Equal(t, "facebook", dist[1].Key)

	ru, err := svc.PlatformRollup(ctx, "Google", 30)
	require.NoError(t, err)
	assert.Equal(t, 1, ru.CampaignCount)
}

func TestOverviewComparesPreviousPeriod(t *testing.T) {
	svc, _ := newAnalytics(t)

	got, err := svc.Overview(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, domain.MustParseDate("2024-01-04"), got.CurrentPeriod.From)
	assert.Equal(t, domain.MustParseDate("2024-01-10"), got.CurrentPeriod.To)
	assert.Equal(t, domain.MustParseDate("2023-12-28"), got.PreviousPeriod.From)
	assert.Equal(t, domain.MustParseDate("2024-01-03"), got.PreviousPeriod.To)

	// the orphan campaign counts towards the overview
	assert.Equal(t, 120.0, got.Current.TotalSpend)
	assert.Equal(t, int64(6), got.Current.TotalConversions)
	assert.Equal(t, 50.0, got.Previous.TotalSpend)
	assert.Equal(t, 140.0, got.Change.Spend)
	assert.Equal(t, 20.0, got.Change.Conversions)
}

func TestOverviewNonPositiveDays(t *testing.T) {
	svc, _ := newAnalytics(t)

	got, err := svc.Overview(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Aggregate{}, got.Current)
	assert.Equal(t, domain.Change{}, got.Change)
}

func TestTrend(t *testing.T) {
	svc, _ := newAnalytics(t)
	ctx := context.Background()

	all, err := svc.Trend(ctx, nil, 7)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, domain.MustParseDate("2024-01-04"), all[0].Date)
	assert.Equal(t, 20.0, all[5].Spend)
	assert.Equal(t, 100.0, all[6].Spend)
	assert.Equal(t, 20.0, all[6].CPA)

	only, err := svc.Trend(ctx, []string{"A"}, 7)
	require.NoError(t, err)
	require.Len(t, only, 7)
	assert.Zero(t, only[5].Spend)

	none, err := svc.Trend(ctx, nil, -1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHeatmap(t *testing.T) {
	svc, _ := newAnalytics(t)

	bins, err := svc.Heatmap(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, bins, engine.HeatmapSize)

	hit := bins[3*engine.HoursPerDay+14]
	assert.Equal(t, 3, hit.Day)
	assert.Equal(t, 14, hit.Hour)
	assert.Equal(t, int64(5), hit.Conversions)
	assert.Equal(t, 10.0, hit.Intensity)
}

func TestGenerateReportForClient(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().GetClient(mock.Anything, "c1").Return(testClients[0], nil)
	refs.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil)

	rep, err := svc.GenerateReport(context.Background(), port.ReportReq{ClientID: "c1", Days: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, defaultReportType, rep.Type)
	assert.Equal(t, 1, rep.Campaigns)
	assert.Equal(t, fixedNow, rep.GeneratedAt)
	assert.Equal(t, 100.0, rep.Comparison.Current.TotalSpend)
	assert.Equal(t, 50.0, rep.Comparison.Previous.TotalSpend)
	assert.Equal(t, 100.0, rep.Comparison.Change.Spend)
}

func TestGenerateReportUnknownClient(t *testing.T) {
	svc, refs := newAnalytics(t)
	refs.EXPECT().GetClient(mock.Anything, "ghost").Return(domain.Client{}, port.ErrNotFound)

	_, err := svc.GenerateReport(context.Background(), port.ReportReq{ClientID: "ghost", Days: 7})
	require.ErrorIs(t, err, port.ErrNotFound)
}
