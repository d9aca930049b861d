package port

import (
	"context"
	"time"

	"adpulse/internal/core/domain"
)

// EventPublisher announces written records to downstream consumers.
type EventPublisher interface {
	PublishMetric(ctx context.Context, event domain.MetricEvent) error
	Close() error
}

// DeliveryGuard de-duplicates webhook deliveries. Claim returns false
// when id was already claimed within ttl. Release drops a claim whose
// delivery could not be stored, so the platform's retry is accepted.
type DeliveryGuard interface {
	Claim(ctx context.Context, source, id string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, source, id string) error
}

// IngestCommand is one canonical metric update. The boundary has
// already normalised platform field names into Patch.
type IngestCommand struct {
	Source     string
	CampaignID string
	Date       domain.Date
	Patch      domain.MetricPatch
	DeliveryID string
}

// IngestUseCase writes metric updates into the store.
type IngestUseCase interface {
	// Ingest validates presence of campaign, date and metrics, applies
	// the patch and returns the merged record. A repeated DeliveryID
	// yields ErrDuplicateDelivery and no write.
	Ingest(ctx context.Context, cmd IngestCommand) (domain.DailyMetricRecord, error)

	// Import applies a batch of commands. Commands missing a campaign
	// or date are skipped and counted.
	Import(ctx context.Context, cmds []IngestCommand) (domain.ImportResult, error)
}
