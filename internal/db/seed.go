package db

import (
	"context"
	"math"
	"math/rand"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Seed writes days of synthetic daily records ending at today for every
// campaign through store. Values follow a plausible funnel: spend
// 200-500, 150-250 impressions per unit spent, 2-5% CTR, 5-15% CVR and
// 50-150 revenue per conversion.
func Seed(ctx context.Context, store port.MetricStore, campaigns []domain.Campaign, days int, today domain.Date, r *rand.Rand) (int, error) {
	written := 0
	for _, c := range campaigns {
		for i := days - 1; i >= 0; i-- {
			date := today.AddDays(-i)
			if _, err := store.Upsert(ctx, c.ID, date, samplePatch(date, r)); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func samplePatch(date domain.Date, r *rand.Rand) domain.MetricPatch {
	baseSpend := 200 + r.Float64()*300
	impressions := int64(baseSpend * (150 + r.Float64()*100))
	clicks := int64(float64(impressions) * (0.02 + r.Float64()*0.03))
	conversions := int64(float64(clicks) * (0.05 + r.Float64()*0.1))
	value := float64(conversions) * (50 + r.Float64()*100)

	spend := math.Round(baseSpend*100) / 100
	value = math.Round(value*100) / 100
	dow := int(date.Weekday())
	hour := r.Intn(24)

	return domain.MetricPatch{
		Spend:           &spend,
		Impressions:     &impressions,
		Clicks:          &clicks,
		Conversions:     &conversions,
		ConversionValue: &value,
		DayOfWeek:       &dow,
		HourOfDay:       &hour,
	}
}
