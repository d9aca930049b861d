package domain

import "strings"

// Status values shared by clients and campaigns.
const (
	StatusActive = "active"
	StatusPaused = "paused"
)

// UnknownPlatform groups campaigns that carry no platform tag.
const UnknownPlatform = "unknown"

// Client is an advertiser account owning campaigns.
type Client struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Logo     string `json:"logo,omitempty" yaml:"logo"`
	Industry string `json:"industry" yaml:"industry"`
	Status   string `json:"status" yaml:"status"` // active, paused
}

// Campaign represents an advertising campaign run on a single platform.
// Budget is a daily budget in the account currency.
type Campaign struct {
	ID       string  `json:"id" yaml:"id"`
	ClientID string  `json:"clientId" yaml:"clientId"`
	Name     string  `json:"name" yaml:"name"`
	Platform string  `json:"platform" yaml:"platform"` // google, facebook, ...
	Status   string  `json:"status" yaml:"status"`     // active, paused
	Budget   float64 `json:"budget" yaml:"budget"`
}

// PlatformKey returns the platform tag used for grouping.
func (c Campaign) PlatformKey() string {
	return NormalizePlatform(c.Platform)
}

// NormalizePlatform folds a platform tag to lower case. A blank tag
// becomes UnknownPlatform.
func NormalizePlatform(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return UnknownPlatform
	}
	return p
}

// CampaignUpdate carries the mutable campaign fields. Nil fields are
// left untouched.
type CampaignUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Platform *string  `json:"platform,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Budget   *float64 `json:"budget,omitempty"`
}

// Apply returns c with the non-nil fields of u applied.
func (u CampaignUpdate) Apply(c Campaign) Campaign {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Platform != nil {
		c.Platform = *u.Platform
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Budget != nil {
		c.Budget = *u.Budget
	}
	return c
}
