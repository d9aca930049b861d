package engine

import (
	"context"
	"fmt"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Resolver rolls campaign aggregates up to client and platform level.
// Each campaign is aggregated on its own window, then the raw totals
// are summed and the ratios recomputed from the sums.
type Resolver struct {
	store port.MetricReader
}

// NewResolver returns a resolver reading from store.
func NewResolver(store port.MetricReader) *Resolver {
	return &Resolver{store: store}
}

// CampaignAggregate aggregates the campaign's most recent days records.
func (r *Resolver) CampaignAggregate(ctx context.Context, c domain.Campaign, days int) (domain.CampaignAggregate, error) {
	records, err := r.store.RecordsInWindow(ctx, c.ID, days)
	if err != nil {
		return domain.CampaignAggregate{}, fmt.Errorf("campaign %s records: %w", c.ID, err)
	}
	return domain.CampaignAggregate{Campaign: c, Aggregate: Aggregate(records)}, nil
}

// RollupByClient aggregates the campaigns of campaigns owned by clientID.
// CampaignCount counts member campaigns whether or not they hold records.
func (r *Resolver) RollupByClient(ctx context.Context, clientID string, campaigns []domain.Campaign, days int) (domain.Rollup, error) {
	return r.rollup(ctx, clientID, filter(campaigns, func(c domain.Campaign) bool {
		return c.ClientID == clientID
	}), days)
}

// RollupByPlatform aggregates the campaigns tagged with platform, compared
// by domain.NormalizePlatform. Campaigns without a tag belong to
// domain.UnknownPlatform.
func (r *Resolver) RollupByPlatform(ctx context.Context, platform string, campaigns []domain.Campaign, days int) (domain.Rollup, error) {
	platform = domain.NormalizePlatform(platform)
	return r.rollup(ctx, platform, filter(campaigns, func(c domain.Campaign) bool {
		return c.PlatformKey() == platform
	}), days)
}

// PlatformDistribution returns one rollup per normalized platform tag, in
// order of first appearance in campaigns.
func (r *Resolver) PlatformDistribution(ctx context.Context, campaigns []domain.Campaign, days int) ([]domain.Rollup, error) {
	var (
		order  []string
		groups = make(map[string][]domain.Campaign)
	)
	for _, c := range campaigns {
		k := c.PlatformKey()
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	out := make([]domain.Rollup, 0, len(order))
	for _, k := range order {
		ru, err := r.rollup(ctx, k, groups[k], days)
		if err != nil {
			return nil, err
		}
		out = append(out, ru)
	}
	return out, nil
}

func (r *Resolver) rollup(ctx context.Context, key string, members []domain.Campaign, days int) (domain.Rollup, error) {
	ru := domain.Rollup{
		Key:           key,
		CampaignCount: len(members),
		Campaigns:     make([]domain.CampaignAggregate, 0, len(members)),
	}
	aggs := make([]domain.Aggregate, 0, len(members))
	for _, c := range members {
		ca, err := r.CampaignAggregate(ctx, c, days)
		if err != nil {
			return domain.Rollup{}, err
		}
		ru.Campaigns = append(ru.Campaigns, ca)
		aggs = append(aggs, ca.Aggregate)
	}
	ru.Aggregate = Combine(aggs...)
	return ru, nil
}

func filter(cs []domain.Campaign, keep func(domain.Campaign) bool) []domain.Campaign {
	var out []domain.Campaign
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
