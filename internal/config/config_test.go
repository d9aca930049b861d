package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 30, cfg.Engine.DefaultDays)
	assert.Equal(t, 365, cfg.Engine.MaxDays)
	assert.Equal(t, 2.0, cfg.Engine.HeatmapScale)
	assert.Equal(t, 100.0, cfg.Engine.HeatmapCap)
	assert.Equal(t, 24*time.Hour, cfg.Ingest.DedupeTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("ENGINE_DEFAULT_DAYS", "500")
	t.Setenv("ENGINE_MAX_DAYS", "90")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("INGEST_WEBHOOK_SECRET", "s3cret")

	cfg, err := parse()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, 90, cfg.Engine.DefaultDays)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "s3cret", cfg.Ingest.WebhookSecret)
}
