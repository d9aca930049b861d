package domain

// DailyMetricRecord is the merged performance of one campaign on one
// calendar day. (CampaignID, Date) is unique within a store.
type DailyMetricRecord struct {
	CampaignID      string  `json:"campaignId"`
	Date            Date    `json:"date"`
	Spend           float64 `json:"spend"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     int64   `json:"conversions"`
	ConversionValue float64 `json:"conversionValue"`

	// DayOfWeek (0=Sunday) and HourOfDay (0-23) only feed the heatmap.
	DayOfWeek *int `json:"dayOfWeek,omitempty"`
	HourOfDay *int `json:"hourOfDay,omitempty"`
}

// HasSlot reports whether the record can be placed in a heatmap bin.
func (r DailyMetricRecord) HasSlot() bool {
	return r.DayOfWeek != nil && r.HourOfDay != nil &&
		*r.DayOfWeek >= 0 && *r.DayOfWeek < 7 &&
		*r.HourOfDay >= 0 && *r.HourOfDay < 24
}

// Clone returns a copy that shares no pointers with r.
func (r DailyMetricRecord) Clone() DailyMetricRecord {
	if r.DayOfWeek != nil {
		v := *r.DayOfWeek
		r.DayOfWeek = &v
	}
	if r.HourOfDay != nil {
		v := *r.HourOfDay
		r.HourOfDay = &v
	}
	return r
}

// MetricPatch is a partial update for a DailyMetricRecord. A nil field
// was not supplied by the source and must not overwrite stored data.
type MetricPatch struct {
	Spend           *float64 `json:"spend,omitempty"`
	Impressions     *int64   `json:"impressions,omitempty"`
	Clicks          *int64   `json:"clicks,omitempty"`
	Conversions     *int64   `json:"conversions,omitempty"`
	ConversionValue *float64 `json:"conversionValue,omitempty"`
	DayOfWeek       *int     `json:"dayOfWeek,omitempty"`
	HourOfDay       *int     `json:"hourOfDay,omitempty"`
}

// Empty reports whether no field is set.
func (p MetricPatch) Empty() bool {
	return p.Spend == nil && p.Impressions == nil && p.Clicks == nil &&
		p.Conversions == nil && p.ConversionValue == nil &&
		p.DayOfWeek == nil && p.HourOfDay == nil
}

// Merge overwrites the fields of r that are present in p.
func (p MetricPatch) Merge(r DailyMetricRecord) DailyMetricRecord {
	if p.Spend != nil {
		r.Spend = *p.Spend
	}
	if p.Impressions != nil {
		r.Impressions = *p.Impressions
	}
	if p.Clicks != nil {
		r.Clicks = *p.Clicks
	}
	if p.Conversions != nil {
		r.Conversions = *p.Conversions
	}
	if p.ConversionValue != nil {
		r.ConversionValue = *p.ConversionValue
	}
	if p.DayOfWeek != nil {
		v := *p.DayOfWeek
		r.DayOfWeek = &v
	}
	if p.HourOfDay != nil {
		v := *p.HourOfDay
		r.HourOfDay = &v
	}
	return r
}

// NewRecord builds the record created by the first write of p for
// (campaignID, date). Unset numeric fields default to zero.
func NewRecord(campaignID string, date Date, p MetricPatch) DailyMetricRecord {
	return p.Merge(DailyMetricRecord{CampaignID: campaignID, Date: date})
}

// MetricEvent is emitted after a record has been written.
type MetricEvent struct {
	ID         string            `json:"id"`
	CampaignID string            `json:"campaignId"`
	Date       Date              `json:"date"`
	Source     string            `json:"source"`
	Record     DailyMetricRecord `json:"record"`
	At         int64             `json:"at"` // unix millis
}
