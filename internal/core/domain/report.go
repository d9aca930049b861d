package domain

import "time"

// Report is a generated performance summary.
type Report struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	ClientID    string     `json:"clientId,omitempty"`
	Days        int        `json:"dateRange"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Campaigns   int        `json:"campaignCount"`
	Comparison  Comparison `json:"comparison"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Rows             int      `json:"rows"`
	Imported         int      `json:"imported"`
	Skipped          int      `json:"skipped"`
	UpdatedCampaigns []string `json:"updatedCampaigns"`
}
