package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
)

const metricColumns = `campaign_id, date, spend, impressions, clicks, conversions, conversion_value, day_of_week, hour_of_day`

// MetricRepository implements port.MetricStore using pgxpool for
// PostgreSQL. The merge happens inside a single INSERT .. ON CONFLICT
// statement, so concurrent writers to the same row are serialised by
// the row lock.
type MetricRepository struct {
	pool *pgxpool.Pool
}

// NewMetricRepository returns a new repository instance.
func NewMetricRepository(pool *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{pool: pool}
}

// Upsert inserts or merges the record for (campaignID, date). A NULL
// parameter keeps the stored column.
func (r *MetricRepository) Upsert(ctx context.Context, campaignID string, date domain.Date, p domain.MetricPatch) (domain.DailyMetricRecord, error) {
	query := `
        INSERT INTO daily_metrics (` + metricColumns + `)
        VALUES (
            $1, $2,
            COALESCE($3::double precision, 0),
            COALESCE($4::bigint, 0),
            COALESCE($5::bigint, 0),
            COALESCE($6::bigint, 0),
            COALESCE($7::double precision, 0),
            $8::smallint,
            $9::smallint)
        ON CONFLICT (campaign_id, date) DO UPDATE SET
            spend            = COALESCE($3::double precision, daily_metrics.spend),
            impressions      = COALESCE($4::bigint, daily_metrics.impressions),
            clicks           = COALESCE($5::bigint, daily_metrics.clicks),
            conversions      = COALESCE($6::bigint, daily_metrics.conversions),
            conversion_value = COALESCE($7::double precision, daily_metrics.conversion_value),
            day_of_week      = COALESCE($8::smallint, daily_metrics.day_of_week),
            hour_of_day      = COALESCE($9::smallint, daily_metrics.hour_of_day),
            updated_at       = now()
        RETURNING ` + metricColumns
	rows, err := r.pool.Query(ctx, query,
		campaignID, date.Time(),
		p.Spend, p.Impressions, p.Clicks, p.Conversions, p.ConversionValue,
		p.DayOfWeek, p.HourOfDay,
	)
	if err != nil {
		return domain.DailyMetricRecord{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanRecord)
}

// RecordsInWindow returns the latest days records, oldest first.
func (r *MetricRepository) RecordsInWindow(ctx context.Context, campaignID string, days int) ([]domain.DailyMetricRecord, error) {
	if days <= 0 {
		return []domain.DailyMetricRecord{}, nil
	}
	query := `
        SELECT ` + metricColumns + ` FROM (
            SELECT ` + metricColumns + `
            FROM daily_metrics
            WHERE campaign_id = $1
            ORDER BY date DESC
            LIMIT $2
        ) w
        ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query, campaignID, days)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRecord)
}

// RecordsBetween returns the records dated within [from, to].
func (r *MetricRepository) RecordsBetween(ctx context.Context, campaignID string, from, to domain.Date) ([]domain.DailyMetricRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+metricColumns+`
        FROM daily_metrics
        WHERE campaign_id = $1 AND date >= $2 AND date <= $3
        ORDER BY date ASC`, campaignID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRecord)
}

// AllCampaignIDs returns the sorted ids of campaigns with records.
func (r *MetricRepository) AllCampaignIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT campaign_id FROM daily_metrics ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanRecord(row pgx.CollectableRow) (domain.DailyMetricRecord, error) {
	var (
		rec      domain.DailyMetricRecord
		day      time.Time
		dow, hod pgtype.Int2
	)
	err := row.Scan(
		&rec.CampaignID,
		&day,
		&rec.Spend,
		&rec.Impressions,
		&rec.Clicks,
		&rec.Conversions,
		&rec.ConversionValue,
		&dow,
		&hod,
	)
	if err != nil {
		return rec, err
	}
	rec.Date = domain.DateOf(day)
	rec.DayOfWeek = intPtr(dow)
	rec.HourOfDay = intPtr(hod)
	return rec, nil
}

func intPtr(v pgtype.Int2) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int16)
	return &i
}
