package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/themugglecoder/quantumrand/internal/services/web/platform/httpx"
)

// generateRequest is the optional JSON body accepted by /generate.
type generateRequest struct {
	Length json.Number `json:"length"`
}

// generateResponse is the JSON contract of /generate.
type generateResponse struct {
	Bits       string  `json:"bits"`
	Length     int     `json:"length"`
	Zeros      int     `json:"zeros"`
	Ones       int     `json:"ones"`
	Entropy    float64 `json:"entropy"`
	DurationMS int64   `json:"duration_ms"`
	TS         string  `json:"ts"`
	Source     string  `json:"source"`
}

// handleGenerate produces one fresh random bit sequence with statistics.
//
// The bit count comes from the length query parameter, or the length field
// of a JSON body when the query is absent. Malformed input is normalized by
// the generation policy, never rejected.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw := r.URL.Query().Get("length")
	if raw == "" && r.Body != nil {
		var body generateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			raw = body.Length.String()
		}
	}

	result, err := h.service.Generate(httpx.RequestContext(r), raw)
	if err != nil {
		log.Printf("generate bits: %v", err)
		_ = httpx.WriteJSONError(w, err)
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, generateResponse{
		Bits:       result.Bits,
		Length:     result.Stats.Length,
		Zeros:      result.Stats.Zeros,
		Ones:       result.Stats.Ones,
		Entropy:    result.Stats.Entropy,
		DurationMS: result.DurationMS,
		TS:         result.Timestamp.UTC().Format(time.RFC3339Nano),
		Source:     result.Source,
	})
}
