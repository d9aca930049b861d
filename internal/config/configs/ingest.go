package configs

import "time"

// Ingest configures the webhook and import boundary.
type Ingest struct {
	// WebhookSecret enables HMAC-SHA256 signature checks when set.
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	// RequireKnownCampaign rejects updates for campaigns missing from
	// the reference data.
	RequireKnownCampaign bool          `env:"REQUIRE_KNOWN_CAMPAIGN" envDefault:"false"`
	MaxImportBytes       int64         `env:"MAX_IMPORT_BYTES" envDefault:"10485760"`
	DedupeTTL            time.Duration `env:"DEDUPE_TTL" envDefault:"24h"`
}
