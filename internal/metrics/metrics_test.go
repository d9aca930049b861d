package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareObservesRoutePattern(t *testing.T) {
	m := New("adpulse", prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/campaigns/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/campaigns/camp1", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/campaigns/{id}"`), body)
	assert.True(t, strings.Contains(body, `status="418"`), body)
}

func TestCounters(t *testing.T) {
	m := New("adpulse", prometheus.NewRegistry())
	m.RecordsUpserted.WithLabelValues("csv").Add(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RecordsUpserted.WithLabelValues("csv")))
}
