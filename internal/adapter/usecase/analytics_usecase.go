package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/engine"
	"adpulse/internal/core/port"
)

const defaultReportType = "performance"

// AnalyticsUseCase answers dashboard queries. It orchestrates the
// reference repository, the metric store and the engine reductions to
// implement port.AnalyticsUseCase.
type AnalyticsUseCase struct {
	refs     port.ReferenceRepository
	store    port.MetricReader
	resolver *engine.Resolver
	scale    engine.HeatmapScale

	// now is the clock the trailing windows end at.
	now func() time.Time
}

// NewAnalyticsUseCase creates a usecase reading records from store and
// campaign membership from refs.
func NewAnalyticsUseCase(refs port.ReferenceRepository, store port.MetricReader, scale engine.HeatmapScale) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		refs:     refs,
		store:    store,
		resolver: engine.NewResolver(store),
		scale:    scale,
		now:      time.Now,
	}
}

func (u *AnalyticsUseCase) today() domain.Date {
	return domain.DateOf(u.now())
}

// ListCampaigns returns every reference campaign with its aggregate.
func (u *AnalyticsUseCase) ListCampaigns(ctx context.Context, days int) ([]domain.CampaignAggregate, error) {
	campaigns, err := u.refs.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CampaignAggregate, 0, len(campaigns))
	for _, c := range campaigns {
		ca, err := u.resolver.CampaignAggregate(ctx, c, days)
		if err != nil {
			return nil, err
		}
		out = append(out, ca)
	}
	return out, nil
}

func (u *AnalyticsUseCase) GetCampaign(ctx context.Context, id string, days int) (*port.CampaignDetail, error) {
	c, err := u.refs.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	records, err := u.store.RecordsInWindow(ctx, id, days)
	if err != nil {
		return nil, fmt.Errorf("campaign %s records: %w", id, err)
	}
	return &port.CampaignDetail{
		Campaign:  c,
		Records:   records,
		Aggregate: engine.Aggregate(records),
	}, nil
}

func (u *AnalyticsUseCase) UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate) (domain.Campaign, error) {
	return u.refs.UpdateCampaign(ctx, id, upd)
}

// ClientPerformance returns one entry per reference client, in
// repository order. Clients without campaigns report a zero aggregate.
func (u *AnalyticsUseCase) ClientPerformance(ctx context.Context, days int) ([]domain.ClientPerformance, error) {
	clients, err := u.refs.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.refs.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ClientPerformance, 0, len(clients))
	for _, cl := range clients {
		ru, err := u.resolver.RollupByClient(ctx, cl.ID, campaigns, days)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ClientPerformance{
			Client:        cl,
			CampaignCount: ru.CampaignCount,
			Aggregate:     ru.Aggregate,
		})
	}
	return out, nil
}

func (u *AnalyticsUseCase) GetClient(ctx context.Context, id string, days int) (*port.ClientDetail, error) {
	cl, err := u.refs.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.refs.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	ru, err := u.resolver.RollupByClient(ctx, id, campaigns, days)
	if err != nil {
		return nil, err
	}
	return &port.ClientDetail{Client: cl, Rollup: ru}, nil
}

func (u *AnalyticsUseCase) PlatformDistribution(ctx context.Context, days int) ([]domain.Rollup, error) {
	campaigns, err := u.refs.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return u.resolver.PlatformDistribution(ctx, campaigns, days)
}

func (u *AnalyticsUseCase) PlatformRollup(ctx context.Context, platform string, days int) (domain.Rollup, error) {
	campaigns, err := u.refs.ListCampaigns(ctx)
	if err != nil {
		return domain.Rollup{}, err
	}
	return u.resolver.RollupByPlatform(ctx, platform, campaigns, days)
}

// Overview compares every campaign holding records, including campaigns
// absent from the reference data.
func (u *AnalyticsUseCase) Overview(ctx context.Context, days int) (domain.Comparison, error) {
	ids, err := u.store.AllCampaignIDs(ctx)
	if err != nil {
		return domain.Comparison{}, err
	}
	return u.compare(ctx, ids, days)
}

func (u *AnalyticsUseCase) Trend(ctx context.Context, campaignIDs []string, days int) ([]domain.TrendPoint, error) {
	today := u.today()
	if days <= 0 {
		return engine.DailyTrend(nil, days, today), nil
	}
	ids, err := u.campaignIDs(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}
	series, err := u.series(ctx, ids, engine.Window(days, today))
	if err != nil {
		return nil, err
	}
	return engine.DailyTrend(series, days, today), nil
}

func (u *AnalyticsUseCase) Heatmap(ctx context.Context, days int) ([]domain.HeatmapBin, error) {
	window := engine.Window(days, u.today())
	if days <= 0 {
		return engine.HeatmapBins(nil, window, u.scale), nil
	}
	ids, err := u.store.AllCampaignIDs(ctx)
	if err != nil {
		return nil, err
	}
	series, err := u.series(ctx, ids, window)
	if err != nil {
		return nil, err
	}
	return engine.HeatmapBins(series, window, u.scale), nil
}

// GenerateReport compares the requested scope against its previous
// period. A report scoped to an unknown client fails with ErrNotFound.
func (u *AnalyticsUseCase) GenerateReport(ctx context.Context, req port.ReportReq) (*domain.Report, error) {
	var ids []string
	if req.ClientID != "" {
		if _, err := u.refs.GetClient(ctx, req.ClientID); err != nil {
			return nil, err
		}
		campaigns, err := u.refs.ListCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range campaigns {
			if c.ClientID == req.ClientID {
				ids = append(ids, c.ID)
			}
		}
	} else {
		var err error
		if ids, err = u.store.AllCampaignIDs(ctx); err != nil {
			return nil, err
		}
	}

	cmp, err := u.compare(ctx, ids, req.Days)
	if err != nil {
		return nil, err
	}
	typ := req.Type
	if typ == "" {
		typ = defaultReportType
	}
	return &domain.Report{
		ID:          uuid.NewString(),
		Type:        typ,
		ClientID:    req.ClientID,
		Days:        req.Days,
		GeneratedAt: u.now().UTC(),
		Campaigns:   len(ids),
		Comparison:  cmp,
	}, nil
}

// compare aggregates ids over the trailing window and the window of
// equal length before it, reading both in one pass per campaign.
func (u *AnalyticsUseCase) compare(ctx context.Context, ids []string, days int) (domain.Comparison, error) {
	cur := engine.Window(days, u.today())
	prev := engine.Previous(cur)
	cmp := domain.Comparison{CurrentPeriod: cur, PreviousPeriod: prev}
	if days <= 0 {
		return cmp, nil
	}

	series, err := u.series(ctx, ids, domain.Period{From: prev.From, To: cur.To})
	if err != nil {
		return domain.Comparison{}, err
	}
	var curRecs, prevRecs []domain.DailyMetricRecord
	for _, rs := range series {
		curRecs = append(curRecs, engine.InPeriod(rs, cur)...)
		prevRecs = append(prevRecs, engine.InPeriod(rs, prev)...)
	}
	cmp.Current = engine.Aggregate(curRecs)
	cmp.Previous = engine.Aggregate(prevRecs)
	cmp.Change = engine.Compare(cmp.Current, cmp.Previous)
	return cmp, nil
}

func (u *AnalyticsUseCase) campaignIDs(ctx context.Context, filter []string) ([]string, error) {
	if len(filter) > 0 {
		return filter, nil
	}
	return u.store.AllCampaignIDs(ctx)
}

func (u *AnalyticsUseCase) series(ctx context.Context, ids []string, p domain.Period) ([][]domain.DailyMetricRecord, error) {
	out := make([][]domain.DailyMetricRecord, 0, len(ids))
	for _, id := range ids {
		rs, err := u.store.RecordsBetween(ctx, id, p.From, p.To)
		if err != nil {
			return nil, fmt.Errorf("campaign %s records: %w", id, err)
		}
		out = append(out, rs)
	}
	return out, nil
}
