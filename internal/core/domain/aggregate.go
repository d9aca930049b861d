package domain

// Aggregate holds the raw sums of a set of records and the ratios
// derived from them. Money fields are rounded to 2 decimals.
type Aggregate struct {
	TotalSpend           float64 `json:"totalSpend"`
	TotalConversions     int64   `json:"totalConversions"`
	TotalConversionValue float64 `json:"totalConversionValue"`
	TotalClicks          int64   `json:"totalClicks"`
	TotalImpressions     int64   `json:"totalImpressions"`

	ROAS float64 `json:"roas"`
	CPA  float64 `json:"cpa"`
	CTR  float64 `json:"ctr"` // percent
	CPC  float64 `json:"cpc"`
}

// CampaignAggregate is a campaign with its windowed aggregate.
type CampaignAggregate struct {
	Campaign
	Aggregate
}

// Rollup is the aggregate of every campaign sharing a client or
// platform. Ratios are derived from the summed totals.
type Rollup struct {
	Key           string              `json:"key"`
	CampaignCount int                 `json:"campaignCount"`
	Aggregate     Aggregate           `json:"aggregate"`
	Campaigns     []CampaignAggregate `json:"campaigns,omitempty"`
}

// ClientPerformance pairs a client with its rollup.
type ClientPerformance struct {
	Client
	CampaignCount int       `json:"campaignCount"`
	Aggregate     Aggregate `json:"aggregate"`
}

// TrendPoint is one day of the gap-filled trend.
type TrendPoint struct {
	Date        Date    `json:"date"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CPA         float64 `json:"cpa"`
}

// HeatmapBin is the conversion volume of one weekday/hour slot.
type HeatmapBin struct {
	Day         int     `json:"day"`  // 0=Sunday
	Hour        int     `json:"hour"` // 0-23
	Conversions int64   `json:"conversions"`
	Intensity   float64 `json:"intensity"`
}

// Change is the percentage change of each KPI between two periods.
type Change struct {
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	ROAS        float64 `json:"roas"`
	CPA         float64 `json:"cpa"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
}

// Period is a closed calendar range.
type Period struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Comparison holds the aggregates of a window and the window of equal
// length immediately before it.
type Comparison struct {
	Current        Aggregate `json:"current"`
	Previous       Aggregate `json:"previous"`
	CurrentPeriod  Period    `json:"currentPeriod"`
	PreviousPeriod Period    `json:"previousPeriod"`
	Change         Change    `json:"change"`
}
