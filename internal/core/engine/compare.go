package engine

import "adpulse/internal/core/domain"

// Compare returns the percentage change of each KPI from previous to
// current. A KPI whose previous value is 0 reports a change of 0.
func Compare(current, previous domain.Aggregate) domain.Change {
	return domain.Change{
		Spend:       pctChange(current.TotalSpend, previous.TotalSpend),
		Conversions: pctChange(float64(current.TotalConversions), float64(previous.TotalConversions)),
		ROAS:        pctChange(current.ROAS, previous.ROAS),
		CPA:         pctChange(current.CPA, previous.CPA),
		CTR:         pctChange(current.CTR, previous.CTR),
		CPC:         pctChange(current.CPC, previous.CPC),
	}
}

func pctChange(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return round2((cur - prev) / prev * 100)
}
