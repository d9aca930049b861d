package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpulse/internal/core/domain"
)

// handleListCampaigns returns every campaign with its aggregate over the
// most recent days records.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.ListCampaigns(r.Context(), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.GetCampaign(r.Context(), chi.URLParam(r, "id"), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleUpdateCampaign applies a partial settings update. Only name,
// platform, status and budget may change.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var upd domain.CampaignUpdate
	if !h.decode(w, r, &upd) {
		return
	}
	if upd.Status != nil && *upd.Status != domain.StatusActive && *upd.Status != domain.StatusPaused {
		h.writeError(w, http.StatusBadRequest, "status must be active or paused")
		return
	}
	if upd.Budget != nil && *upd.Budget < 0 {
		h.writeError(w, http.StatusBadRequest, "budget must not be negative")
		return
	}

	c, err := h.analytics.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.ClientPerformance(r.Context(), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.GetClient(r.Context(), chi.URLParam(r, "id"), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePlatformDistribution(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.PlatformDistribution(r.Context(), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePlatformRollup(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.PlatformRollup(r.Context(), chi.URLParam(r, "platform"), h.days(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}
