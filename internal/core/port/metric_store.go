package port

import (
	"context"
	"errors"

	"adpulse/internal/core/domain"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownCampaign   = errors.New("unknown campaign")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrDuplicateDelivery = errors.New("duplicate delivery")
)

// MetricReader is the read side of the metric store.
type MetricReader interface {
	// RecordsInWindow returns the most recent days records of the
	// campaign, oldest first. Fewer records are returned when fewer
	// exist; days <= 0 returns none. Unknown campaigns return none.
	RecordsInWindow(ctx context.Context, campaignID string, days int) ([]domain.DailyMetricRecord, error)
	// RecordsBetween returns the campaign's records dated within
	// [from, to], oldest first.
	RecordsBetween(ctx context.Context, campaignID string, from, to domain.Date) ([]domain.DailyMetricRecord, error)
	// AllCampaignIDs returns the campaigns holding at least one record,
	// sorted.
	AllCampaignIDs(ctx context.Context) ([]string, error)
}

// MetricStore is the authoritative holder of daily metric records. It
// is an outbound port. Implementations must serialise concurrent
// upserts to the same (campaignID, date) so that the merge is atomic.
type MetricStore interface {
	MetricReader
	// Upsert creates the record for (campaignID, date) from patch, or
	// merges patch into the existing record, overwriting only the
	// fields patch carries. It returns the resulting record.
	Upsert(ctx context.Context, campaignID string, date domain.Date, patch domain.MetricPatch) (domain.DailyMetricRecord, error)
}
