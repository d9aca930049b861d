package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// CampaignDetail is a campaign with its windowed records and aggregate.
type CampaignDetail struct {
	domain.Campaign
	Records   []domain.DailyMetricRecord `json:"metrics"`
	Aggregate domain.Aggregate           `json:"totals"`
}

// ClientDetail is a client with its campaigns and rollup.
type ClientDetail struct {
	domain.Client
	Rollup domain.Rollup `json:"rollup"`
}

// ReportReq selects the scope of a generated report. An empty ClientID
// covers every campaign.
type ReportReq struct {
	Type     string
	ClientID string
	Days     int
}

// AnalyticsUseCase defines the query operations exposed to the HTTP
// layer. Every days argument is a trailing window length, read two ways:
//   - campaign, client and platform aggregates take each campaign's most
//     recent days records (MetricReader.RecordsInWindow), however old;
//   - Overview, Trend, Heatmap and GenerateReport take the calendar days
//     ending today (MetricReader.RecordsBetween).
//
// On sparse data the same days can therefore yield different totals.
type AnalyticsUseCase interface {
	ListCampaigns(ctx context.Context, days int) ([]domain.CampaignAggregate, error)
	// GetCampaign returns ErrNotFound for unknown campaigns.
	GetCampaign(ctx context.Context, id string, days int) (*CampaignDetail, error)
	UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate) (domain.Campaign, error)

	ClientPerformance(ctx context.Context, days int) ([]domain.ClientPerformance, error)
	// GetClient returns ErrNotFound for unknown clients.
	GetClient(ctx context.Context, id string, days int) (*ClientDetail, error)

	PlatformDistribution(ctx context.Context, days int) ([]domain.Rollup, error)
	PlatformRollup(ctx context.Context, platform string, days int) (domain.Rollup, error)

	// Overview compares all campaigns over the window with the window
	// of equal length before it.
	Overview(ctx context.Context, days int) (domain.Comparison, error)
	// Trend returns a gap-filled daily series. An empty campaignIDs
	// covers every campaign holding records.
	Trend(ctx context.Context, campaignIDs []string, days int) ([]domain.TrendPoint, error)
	Heatmap(ctx context.Context, days int) ([]domain.HeatmapBin, error)

	GenerateReport(ctx context.Context, req ReportReq) (*domain.Report, error)
}
