package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/metrics"
)

const releaseTimeout = 2 * time.Second

// IngestOptions tunes the ingestion boundary.
type IngestOptions struct {
	// RequireKnownCampaign rejects updates for campaigns the reference
	// repository does not hold.
	RequireKnownCampaign bool
	// DedupeTTL is how long a delivery ID stays claimed.
	DedupeTTL time.Duration
}

// IngestUseCase writes metric updates into the store and announces them.
// It implements port.IngestUseCase.
type IngestUseCase struct {
	store     port.MetricStore
	refs      port.ReferenceRepository
	publisher port.EventPublisher
	// guard is optional; without it deliveries are never de-duplicated.
	guard port.DeliveryGuard

	opts    IngestOptions
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

func NewIngestUseCase(
	store port.MetricStore,
	refs port.ReferenceRepository,
	publisher port.EventPublisher,
	guard port.DeliveryGuard,
	opts IngestOptions,
	m *metrics.Metrics,
	log *slog.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		store:     store,
		refs:      refs,
		publisher: publisher,
		guard:     guard,
		opts:      opts,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

// Ingest applies one update. Presence of the metrics payload is checked
// by the transport, which alone can tell an absent object from an empty one.
func (u *IngestUseCase) Ingest(ctx context.Context, cmd port.IngestCommand) (domain.DailyMetricRecord, error) {
	if err := u.validate(ctx, cmd); err != nil {
		return domain.DailyMetricRecord{}, err
	}

	claimed := false
	if u.guard != nil && cmd.DeliveryID != "" {
		fresh, err := u.guard.Claim(ctx, cmd.Source, cmd.DeliveryID, u.opts.DedupeTTL)
		switch {
		case err != nil:
			// upserts are idempotent, so an unavailable guard only risks a
			// repeated write of the same values
			u.log.Warn("delivery guard unavailable",
				slog.String("source", cmd.Source),
				slog.String("delivery_id", cmd.DeliveryID),
				slog.Any("error", err),
			)
		case !fresh:
			return domain.DailyMetricRecord{}, port.ErrDuplicateDelivery
		default:
			claimed = true
		}
	}

	rec, err := u.write(ctx, cmd)
	if err != nil {
		if claimed {
			u.release(cmd)
		}
		return domain.DailyMetricRecord{}, err
	}
	u.log.Info("metrics ingested",
		slog.String("source", cmd.Source),
		slog.String("campaign_id", cmd.CampaignID),
		slog.String("date", cmd.Date.String()),
	)
	return rec, nil
}

// Import applies cmds in order. Invalid commands are skipped and
// counted; a store failure aborts the import.
func (u *IngestUseCase) Import(ctx context.Context, cmds []port.IngestCommand) (domain.ImportResult, error) {
	res := domain.ImportResult{Rows: len(cmds), UpdatedCampaigns: []string{}}
	updated := make(map[string]struct{})

	for _, cmd := range cmds {
		if err := u.validate(ctx, cmd); err != nil {
			if !errors.Is(err, port.ErrMissingFields) && !errors.Is(err, port.ErrUnknownCampaign) {
				return res, err
			}
			res.Skipped++
			u.metrics.ImportRows.WithLabelValues("skipped").Inc()
			continue
		}
		if _, err := u.write(ctx, cmd); err != nil {
			return res, err
		}
		res.Imported++
		u.metrics.ImportRows.WithLabelValues("imported").Inc()
		updated[cmd.CampaignID] = struct{}{}
	}

	for id := range updated {
		res.UpdatedCampaigns = append(res.UpdatedCampaigns, id)
	}
	sort.Strings(res.UpdatedCampaigns)

	u.log.Info("import finished",
		slog.Int("rows", res.Rows),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}

// release drops the claim of a delivery that was not stored. It runs on
// its own context; ctx may already be done.
func (u *IngestUseCase) release(cmd port.IngestCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := u.guard.Release(ctx, cmd.Source, cmd.DeliveryID); err != nil {
		u.log.Error("release delivery claim",
			slog.String("source", cmd.Source),
			slog.String("delivery_id", cmd.DeliveryID),
			slog.Any("error", err),
		)
	}
}

func (u *IngestUseCase) validate(ctx context.Context, cmd port.IngestCommand) error {
	if cmd.CampaignID == "" || cmd.Date.IsZero() {
		return port.ErrMissingFields
	}
	if !u.opts.RequireKnownCampaign {
		return nil
	}
	if _, err := u.refs.GetCampaign(ctx, cmd.CampaignID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return fmt.Errorf("%w: %s", port.ErrUnknownCampaign, cmd.CampaignID)
		}
		return err
	}
	return nil
}

func (u *IngestUseCase) write(ctx context.Context, cmd port.IngestCommand) (domain.DailyMetricRecord, error) {
	rec, err := u.store.Upsert(ctx, cmd.CampaignID, cmd.Date, cmd.Patch)
	if err != nil {
		return domain.DailyMetricRecord{}, fmt.Errorf("upsert %s/%s: %w", cmd.CampaignID, cmd.Date, err)
	}
	u.metrics.RecordsUpserted.WithLabelValues(cmd.Source).Inc()

	ev := domain.MetricEvent{
		ID:         uuid.NewString(),
		CampaignID: cmd.CampaignID,
		Date:       cmd.Date,
		Source:     cmd.Source,
		Record:     rec,
		At:         u.now().UnixMilli(),
	}
	if err := u.publisher.PublishMetric(ctx, ev); err != nil {
		u.metrics.EventPublishErrors.Inc()
		u.log.Error("publish metric event",
			slog.String("campaign_id", cmd.CampaignID),
			slog.Any("error", err),
		)
	}
	return rec, nil
}
