package web

import (
	"log"
	"net/http"
	"time"

	"github.com/themugglecoder/quantumrand/internal/platform/errors"
	"github.com/themugglecoder/quantumrand/internal/services/web/platform/httpx"
)

// historyItem is one row of the /api/history response.
type historyItem struct {
	Length     int     `json:"length"`
	Zeros      int     `json:"zeros"`
	Ones       int     `json:"ones"`
	Entropy    float64 `json:"entropy"`
	DurationMS int64   `json:"duration_ms"`
	Source     string  `json:"source"`
	TS         string  `json:"ts"`
}

// handleHistory returns recent generation telemetry, newest first. Bit
// sequences are never stored, so none appear here.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	items := make([]historyItem, 0, historyPageSize)
	if h.history == nil {
		_ = httpx.WriteJSON(w, http.StatusOK, items)
		return
	}

	events, err := h.history.RecentGenerationEvents(httpx.RequestContext(r), historyPageSize)
	if err != nil {
		log.Printf("load generation history: %v", err)
		_ = httpx.WriteJSONError(w, errors.Wrap(errors.KindInternal, "load generation history", err))
		return
	}
	for _, evt := range events {
		items = append(items, historyItem{
			Length:     evt.Length,
			Zeros:      evt.Zeros,
			Ones:       evt.Ones,
			Entropy:    evt.Entropy,
			DurationMS: evt.DurationMS,
			Source:     evt.Source,
			TS:         evt.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, items)
}
