package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adpulse/internal/core/port"
	"adpulse/internal/metrics"
)

// Options configures request parsing limits and security.
type Options struct {
	DefaultDays int
	MaxDays     int
	// WebhookSecret enables signature checks on webhook bodies.
	WebhookSecret  string
	MaxImportBytes int64
	AllowedOrigins []string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: queries go to the analytics usecase, webhook and import bodies
// are normalised and handed to the ingest usecase.
type Handler struct {
	analytics port.AnalyticsUseCase
	ingest    port.IngestUseCase
	metrics   *metrics.Metrics
	logger    *slog.Logger
	opts      Options
	router    chi.Router

	now func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	analytics port.AnalyticsUseCase,
	ingest port.IngestUseCase,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Handler {
	h := &Handler{
		analytics: analytics,
		ingest:    ingest,
		metrics:   m,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			headerDeliveryID, headerSignature, headerGoogleSignature, headerFacebookSignature,
		},
		MaxAge: 300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Get("/clients", h.handleListClients)
		r.Get("/clients/{id}", h.handleGetClient)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}", h.handleUpdateCampaign)

		r.Get("/platforms", h.handlePlatformDistribution)
		r.Get("/platforms/{platform}", h.handlePlatformRollup)

		r.Get("/dashboard/overview", h.handleOverview)
		r.Get("/dashboard/trend", h.handleTrend)
		r.Get("/dashboard/heatmap", h.handleHeatmap)

		r.Post("/webhooks/{platform}", h.handleWebhook)
		r.Post("/import/csv", h.handleImport)
		r.Post("/reports/generate", h.handleGenerateReport)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
