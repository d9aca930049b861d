package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.Overview(r.Context(), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleTrend returns one point per day of the window. campaign_id
// restricts the series to the listed campaigns.
func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.Trend(r.Context(), campaignFilter(r), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.Heatmap(r.Context(), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// reportRequest accepts dateRange as a number or a numeric string.
type reportRequest struct {
	Type      string          `json:"type"`
	ClientID  string          `json:"clientId"`
	DateRange json.RawMessage `json:"dateRange"`
}

func (q reportRequest) rawDays() string {
	s := strings.TrimSpace(string(q.DateRange))
	if unq, err := strconv.Unquote(s); err == nil {
		return unq
	}
	return s
}

type reportResponse struct {
	Success bool           `json:"success"`
	Report  *domain.Report `json:"report"`
}

func (h *Handler) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !h.decode(w, r, &req) {
		return
	}
	rep, err := h.analytics.GenerateReport(r.Context(), port.ReportReq{
		Type:     req.Type,
		ClientID: req.ClientID,
		Days:     h.clampDays(req.rawDays()),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reportResponse{Success: true, Report: rep})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: h.now().UTC()})
}
