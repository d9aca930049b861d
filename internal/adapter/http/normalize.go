package httpadapter

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"adpulse/internal/core/domain"
)

// Field name variants used by ad platforms and their CSV exports. The
// first present key wins.
var (
	campaignKeys        = []string{"campaignId", "campaign_id", "campaign", "Campaign ID", "Campaign", "Campaign Name"}
	dateKeys            = []string{"date", "Date", "Day", "day"}
	spendKeys           = []string{"spend", "cost", "Spend", "Cost", "Amount Spent", "Amount spent"}
	impressionKeys      = []string{"impressions", "Impressions", "Impr.", "Impr"}
	clickKeys           = []string{"clicks", "Clicks", "Link Clicks", "Link clicks"}
	conversionKeys      = []string{"conversions", "Conversions", "Results"}
	conversionValueKeys = []string{"conversionValue", "conversion_value", "revenue", "Revenue", "Conversion Value", "Conv. value"}
	dayOfWeekKeys       = []string{"dayOfWeek", "day_of_week", "Day of Week"}
	hourOfDayKeys       = []string{"hourOfDay", "hour_of_day", "Hour of Day", "Hour"}
)

// lookup returns the value of the first key of keys present in m.
func lookup(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// lookupString returns the first non-blank string form of keys in m.
// Numeric identifiers are accepted.
func lookupString(m map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// number converts a JSON number or a numeric string such as "1,234.50"
// or "$12" to a finite float.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSuffix(s, "%")
		if s == "" {
			return 0, false
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func floatField(m map[string]any, keys []string) *float64 {
	v, ok := lookup(m, keys)
	if !ok {
		return nil
	}
	f, ok := number(v)
	if !ok {
		return nil
	}
	return &f
}

// intField reads a count. Values outside the int64 range are treated as
// absent.
func intField(m map[string]any, keys []string) *int64 {
	f := floatField(m, keys)
	if f == nil {
		return nil
	}
	r := math.Round(*f)
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return nil
	}
	n := int64(r)
	return &n
}

// slotField reads a day-of-week or hour value, ignoring values outside
// [0, limit).
func slotField(m map[string]any, keys []string, limit int) *int {
	n := intField(m, keys)
	if n == nil || *n < 0 || *n >= int64(limit) {
		return nil
	}
	v := int(*n)
	return &v
}

// normalizePatch maps platform field names onto a MetricPatch. Fields
// that are absent or not numeric stay unset.
func normalizePatch(m map[string]any) domain.MetricPatch {
	return domain.MetricPatch{
		Spend:           floatField(m, spendKeys),
		Impressions:     intField(m, impressionKeys),
		Clicks:          intField(m, clickKeys),
		Conversions:     intField(m, conversionKeys),
		ConversionValue: floatField(m, conversionValueKeys),
		DayOfWeek:       slotField(m, dayOfWeekKeys, 7),
		HourOfDay:       slotField(m, hourOfDayKeys, 24),
	}
}

// normalizeRow reads the identity and metrics of a flat import row.
func normalizeRow(row map[string]any) (campaignID string, date domain.Date, patch domain.MetricPatch) {
	campaignID = lookupString(row, campaignKeys)
	if d, err := domain.ParseDate(lookupString(row, dateKeys)); err == nil {
		date = d
	}
	return campaignID, date, normalizePatch(row)
}
