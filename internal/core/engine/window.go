package engine

import "adpulse/internal/core/domain"

// Window returns the trailing span of days calendar days ending at
// today, inclusive. days <= 0 yields a period with To before From.
func Window(days int, today domain.Date) domain.Period {
	return domain.Period{From: today.AddDays(-(days - 1)), To: today}
}

// Previous returns the period of equal length immediately before p.
func Previous(p domain.Period) domain.Period {
	n := domain.DaysBetween(p.From, p.To) + 1
	return domain.Period{From: p.From.AddDays(-n), To: p.From.AddDays(-1)}
}

// InPeriod returns the records of rs dated within p, in input order.
func InPeriod(rs []domain.DailyMetricRecord, p domain.Period) []domain.DailyMetricRecord {
	out := make([]domain.DailyMetricRecord, 0, len(rs))
	for _, r := range rs {
		if r.Date.Between(p.From, p.To) {
			out = append(out, r)
		}
	}
	return out
}
