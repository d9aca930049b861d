package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"adpulse/db/migrations"
	httpadapter "adpulse/internal/adapter/http"
	"adpulse/internal/adapter/kafka"
	"adpulse/internal/adapter/memory"
	"adpulse/internal/adapter/postgres"
	"adpulse/internal/adapter/redis"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/config"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/engine"
	"adpulse/internal/core/port"
	"adpulse/internal/db"
	"adpulse/internal/metrics"
)

// main is the entry point of the adpulse service. It loads configuration,
// builds the metric store selected by STORE_DRIVER, wires the optional
// Redis and Kafka adapters, then serves the HTTP API until a termination
// signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reference, err := loadReference(cfg.Reference.File, logger)
	if err != nil {
		logger.Error("reference data error", slog.Any("error", err))
		return
	}

	var (
		store port.MetricStore
		refs  port.ReferenceRepository
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("schema migrated",
				slog.Uint64("from", uint64(from)),
				slog.Uint64("to", migrations.Version),
			)
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		pgRefs := postgres.NewReferenceRepository(pool)
		if err = pgRefs.Import(ctx, reference.Clients, reference.Campaigns); err != nil {
			logger.Error("reference import error", slog.Any("error", err))
			return
		}
		store, refs = postgres.NewMetricRepository(pool), pgRefs
	case config.StoreMemory:
		store, refs = memory.NewMetricStore(), memory.NewReferenceRepository(reference)
	default:
		logger.Error("unknown store driver", slog.String("driver", cfg.StoreDriver))
		return
	}
	logger.Info("metric store ready", slog.String("driver", cfg.StoreDriver))

	if cfg.SeedDemoDays > 0 {
		campaigns, err := refs.ListCampaigns(ctx)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		n, err := db.Seed(ctx, store, campaigns, cfg.SeedDemoDays, domain.DateOf(time.Now()), rng)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo records seeded", slog.Int("records", n))
	}

	var guard port.DeliveryGuard
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		guard = redis.NewDeliveryGuard(client)
	} else {
		logger.Warn("redis disabled, webhook deliveries are not de-duplicated")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("adpulse", reg)

	var publisher port.EventPublisher = kafka.Nop{}
	if cfg.Kafka.Enabled() {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, func(failed int, err error) {
			m.EventPublishErrors.Add(float64(failed))
			logger.Error("metric events not delivered",
				slog.Int("events", failed),
				slog.Any("error", err),
			)
		})
		logger.Info("publishing metric events",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
		)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("publisher close error", slog.Any("error", err))
		}
	}()

	analytics := usecase.NewAnalyticsUseCase(refs, store, engine.HeatmapScale{
		Factor: cfg.Engine.HeatmapScale,
		Cap:    cfg.Engine.HeatmapCap,
	})
	ingest := usecase.NewIngestUseCase(store, refs, publisher, guard, usecase.IngestOptions{
		RequireKnownCampaign: cfg.Ingest.RequireKnownCampaign,
		DedupeTTL:            cfg.Ingest.DedupeTTL,
	}, m, logger)

	handler := httpadapter.NewHandler(analytics, ingest, m, logger, httpadapter.Options{
		DefaultDays:    cfg.Engine.DefaultDays,
		MaxDays:        cfg.Engine.MaxDays,
		WebhookSecret:  cfg.Ingest.WebhookSecret,
		MaxImportBytes: cfg.Ingest.MaxImportBytes,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// loadReference reads the reference file. A missing file yields empty
// reference data.
func loadReference(path string, logger *slog.Logger) (memory.ReferenceData, error) {
	data, err := memory.LoadReferenceFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("reference file not found", slog.String("path", path))
		return memory.ReferenceData{}, nil
	}
	if err != nil {
		return memory.ReferenceData{}, err
	}
	logger.Info("reference data loaded",
		slog.Int("clients", len(data.Clients)),
		slog.Int("campaigns", len(data.Campaigns)),
	)
	return data, nil
}
