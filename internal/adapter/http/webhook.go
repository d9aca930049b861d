package httpadapter

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const (
	headerDeliveryID        = "X-Delivery-ID"
	headerSignature         = "X-Webhook-Signature"
	headerGoogleSignature   = "X-Google-Signature"
	headerFacebookSignature = "X-Facebook-Signature"

	maxWebhookBytes = 1 << 20
)

type webhookResponse struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message"`
	Duplicate bool                      `json:"duplicate,omitempty"`
	Record    *domain.DailyMetricRecord `json:"record,omitempty"`
}

// handleWebhook receives a metric update pushed by an ad platform. The
// body is {campaignId, date, metrics, deliveryId?}; metric names inside
// metrics may use any known platform variant.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		h.reject(w, platform, "body", http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	if h.opts.WebhookSecret != "" {
		if err = verifySignature(body, signatureHeader(r), h.opts.WebhookSecret); err != nil {
			h.reject(w, platform, "signature", http.StatusUnauthorized, "invalid signature")
			return
		}
	}

	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err = dec.Decode(&payload); err != nil || payload == nil {
		h.reject(w, platform, "json", http.StatusBadRequest, "invalid JSON")
		return
	}

	campaignID := lookupString(payload, campaignKeys)
	rawDate := lookupString(payload, dateKeys)
	metrics, ok := payload["metrics"].(map[string]any)
	if campaignID == "" || rawDate == "" || !ok {
		h.reject(w, platform, "missing_fields", http.StatusBadRequest, "missing required fields")
		return
	}
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		h.reject(w, platform, "date", http.StatusBadRequest, "invalid date")
		return
	}

	deliveryID := lookupString(payload, []string{"deliveryId"})
	if deliveryID == "" {
		deliveryID = r.Header.Get(headerDeliveryID)
	}

	rec, err := h.ingest.Ingest(r.Context(), port.IngestCommand{
		Source:     platform,
		CampaignID: campaignID,
		Date:       date,
		Patch:      normalizePatch(metrics),
		DeliveryID: deliveryID,
	})
	switch {
	case errors.Is(err, port.ErrDuplicateDelivery):
		h.metrics.DuplicateDelivered.WithLabelValues(platform).Inc()
		h.writeJSON(w, http.StatusOK, webhookResponse{
			Success:   true,
			Message:   "duplicate delivery ignored",
			Duplicate: true,
		})
		return
	case err != nil:
		if errors.Is(err, port.ErrUnknownCampaign) {
			h.metrics.IngestRejected.WithLabelValues(platform, "unknown_campaign").Inc()
		}
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, webhookResponse{
		Success: true,
		Message: platform + " metrics updated",
		Record:  &rec,
	})
}

func (h *Handler) reject(w http.ResponseWriter, platform, reason string, status int, msg string) {
	h.metrics.IngestRejected.WithLabelValues(platform, reason).Inc()
	h.logger.Warn("webhook rejected",
		slog.String("platform", platform),
		slog.String("reason", reason),
	)
	h.writeError(w, status, msg)
}

// signatureHeader returns the first signature header present. Platforms
// name the header differently.
func signatureHeader(r *http.Request) string {
	for _, k := range []string{headerSignature, headerGoogleSignature, headerFacebookSignature} {
		if v := r.Header.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// verifySignature checks sig against the hex HMAC-SHA256 of body. A
// "sha256=" prefix is tolerated.
func verifySignature(body []byte, sig, secret string) error {
	sig = strings.TrimPrefix(strings.TrimSpace(sig), "sha256=")
	got, err := hex.DecodeString(sig)
	if err != nil || len(got) == 0 {
		return port.ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return port.ErrInvalidSignature
	}
	return nil
}
