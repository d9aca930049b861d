package httpadapter

import (
	"net/http"
	"strconv"
	"strings"
)

// days reads the trailing window length from the days query parameter.
// Absent, non-numeric and non-positive values fall back to the default;
// values above the maximum are clamped.
func (h *Handler) days(r *http.Request) int {
	return h.clampDays(r.URL.Query().Get("days"))
}

func (h *Handler) clampDays(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return h.opts.DefaultDays
	}
	if h.opts.MaxDays > 0 && n > h.opts.MaxDays {
		return h.opts.MaxDays
	}
	return n
}

// campaignFilter collects campaign_id values, repeated or comma separated.
func campaignFilter(r *http.Request) []string {
	var ids []string
	for _, v := range r.URL.Query()["campaign_id"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
