// Package engine holds the read-side reductions over daily metric
// records. Everything here except Resolver is a pure function of its
// arguments.
package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"adpulse/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// totals accumulates raw sums. Money is summed as decimals so the
// result does not depend on float accumulation error.
type totals struct {
	spend       decimal.Decimal
	value       decimal.Decimal
	conversions int64
	clicks      int64
	impressions int64
}

func (t *totals) addRecord(r domain.DailyMetricRecord) {
	t.spend = t.spend.Add(money(r.Spend))
	t.value = t.value.Add(money(r.ConversionValue))
	t.conversions += r.Conversions
	t.clicks += r.Clicks
	t.impressions += r.Impressions
}

func (t *totals) addAggregate(a domain.Aggregate) {
	t.spend = t.spend.Add(money(a.TotalSpend))
	t.value = t.value.Add(money(a.TotalConversionValue))
	t.conversions += a.TotalConversions
	t.clicks += a.TotalClicks
	t.impressions += a.TotalImpressions
}

func (t totals) aggregate() domain.Aggregate {
	conv := decimal.NewFromInt(t.conversions)
	clicks := decimal.NewFromInt(t.clicks)
	imps := decimal.NewFromInt(t.impressions)
	return domain.Aggregate{
		TotalSpend:           t.spend.Round(2).InexactFloat64(),
		TotalConversions:     t.conversions,
		TotalConversionValue: t.value.Round(2).InexactFloat64(),
		TotalClicks:          t.clicks,
		TotalImpressions:     t.impressions,
		ROAS:                 ratio(t.value, t.spend),
		CPA:                  ratio(t.spend, conv),
		CTR:                  ratio(clicks.Mul(hundred), imps),
		CPC:                  ratio(t.spend, clicks),
	}
}

// Aggregate reduces records into raw sums and derived ratios. Records
// are summed in input order. An empty input yields the zero Aggregate.
func Aggregate(records []domain.DailyMetricRecord) domain.Aggregate {
	var t totals
	for _, r := range records {
		t.addRecord(r)
	}
	return t.aggregate()
}

// Combine sums the raw totals of aggs and recomputes the ratios from
// those sums. Ratios of the inputs are ignored, never averaged.
func Combine(aggs ...domain.Aggregate) domain.Aggregate {
	var t totals
	for _, a := range aggs {
		t.addAggregate(a)
	}
	return t.aggregate()
}

// ratio divides and rounds to 2 decimals; a zero denominator yields 0.
func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).Round(2).InexactFloat64()
}

// money converts a float to a decimal, mapping NaN and infinities to 0.
func money(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func round2(f float64) float64 {
	return money(f).Round(2).InexactFloat64()
}
