package engine

import (
	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

// DailyTrend returns exactly days points, one per calendar day of the
// window ending at today, oldest first. Records are matched to days by
// date, so series may be sparse or unsorted; records outside the window
// are ignored. CPA is derived from each day's own totals.
func DailyTrend(series [][]domain.DailyMetricRecord, days int, today domain.Date) []domain.TrendPoint {
	if days <= 0 {
		return []domain.TrendPoint{}
	}
	window := Window(days, today)

	points := make([]domain.TrendPoint, days)
	spend := make([]decimal.Decimal, days)
	for i := range points {
		points[i].Date = window.From.AddDays(i)
	}

	for _, rs := range series {
		for _, r := range rs {
			if !r.Date.Between(window.From, window.To) {
				continue
			}
			i := domain.DaysBetween(window.From, r.Date)
			spend[i] = spend[i].Add(money(r.Spend))
			points[i].Conversions += r.Conversions
			points[i].Impressions += r.Impressions
			points[i].Clicks += r.Clicks
		}
	}

	for i := range points {
		points[i].Spend = spend[i].Round(2).InexactFloat64()
		points[i].CPA = ratio(spend[i], decimal.NewFromInt(points[i].Conversions))
	}
	return points
}
