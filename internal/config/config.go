package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adpulse/internal/config/configs"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects where metric records and reference data live:
	// "memory" (default) or "postgres".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	// SeedDemoDays generates that many days of synthetic records per
	// campaign on startup. Zero disables seeding.
	SeedDemoDays int `env:"SEED_DEMO_DAYS" envDefault:"0"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Kafka     configs.Kafka     `envPrefix:"KAFKA_"`
	Engine    configs.Engine    `envPrefix:"ENGINE_"`
	Ingest    configs.Ingest    `envPrefix:"INGEST_"`
	Reference configs.Reference `envPrefix:"REFERENCE_"`
}

// Load reads configuration from environment variables into a Config.
// Variables from an optional .env file in the working directory are
// loaded first; variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return parse()
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	cfg.Engine = cfg.Engine.Normalize()
	return cfg, nil
}
