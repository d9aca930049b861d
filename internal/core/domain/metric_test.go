package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricPatchMerge(t *testing.T) {
	spend, conv := 10.0, int64(5)
	rec := NewRecord("c", NewDate(2024, 1, 1), MetricPatch{Spend: &spend})
	rec = MetricPatch{Conversions: &conv}.Merge(rec)

	assert.Equal(t, 10.0, rec.Spend)
	assert.Equal(t, int64(5), rec.Conversions)
	assert.Zero(t, rec.Clicks)
}

func TestMetricPatchEmpty(t *testing.T) {
	assert.True(t, MetricPatch{}.Empty())
	h := 0
	assert.False(t, MetricPatch{HourOfDay: &h}.Empty())
}

func TestHasSlot(t *testing.T) {
	d, h, bad := 6, 23, 24
	assert.True(t, DailyMetricRecord{DayOfWeek: &d, HourOfDay: &h}.HasSlot())
	assert.False(t, DailyMetricRecord{DayOfWeek: &d}.HasSlot())
	assert.False(t, DailyMetricRecord{DayOfWeek: &d, HourOfDay: &bad}.HasSlot())
}

func TestCampaignUpdateApply(t *testing.T) {
	name := "Renamed"
	c := CampaignUpdate{Name: &name}.Apply(Campaign{ID: "x", Name: "Old", Budget: 5})
	assert.Equal(t, "Renamed", c.Name)
	assert.Equal(t, 5.0, c.Budget)
}
