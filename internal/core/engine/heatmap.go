package engine

import (
	"math"

	"adpulse/internal/core/domain"
)

const (
	DaysPerWeek = 7
	HoursPerDay = 24
	// HeatmapSize is the number of bins HeatmapBins always returns.
	HeatmapSize = DaysPerWeek * HoursPerDay
)

// HeatmapScale maps a bin's conversions to its intensity:
// min(Cap, conversions*Factor), never below zero.
type HeatmapScale struct {
	Factor float64
	Cap    float64
}

// DefaultHeatmapScale is the dashboard's fixed linear scale.
var DefaultHeatmapScale = HeatmapScale{Factor: 2, Cap: 100}

func (s HeatmapScale) intensity(conversions int64) float64 {
	c := s.Cap
	if c <= 0 || c > 100 {
		c = 100
	}
	f := s.Factor
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	return round2(math.Max(0, math.Min(c, float64(conversions)*f)))
}

// HeatmapBins sums conversions per (weekday, hour) over every record of
// series dated within window. The result always holds HeatmapSize bins
// ordered by day then hour; records without a slot are skipped.
func HeatmapBins(series [][]domain.DailyMetricRecord, window domain.Period, scale HeatmapScale) []domain.HeatmapBin {
	var counts [DaysPerWeek][HoursPerDay]int64
	for _, rs := range series {
		for _, r := range rs {
			if !r.HasSlot() || !r.Date.Between(window.From, window.To) {
				continue
			}
			counts[*r.DayOfWeek][*r.HourOfDay] += r.Conversions
		}
	}

	bins := make([]domain.HeatmapBin, 0, HeatmapSize)
	for day := 0; day < DaysPerWeek; day++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			c := counts[day][hour]
			bins = append(bins, domain.HeatmapBin{
				Day:         day,
				Hour:        hour,
				Conversions: c,
				Intensity:   scale.intensity(c),
			})
		}
	}
	return bins
}
