package web

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

// streamSampleBits is the length of each live-ticker sample.
const streamSampleBits = "64"

// streamInterval paces live-ticker frames.
const streamInterval = time.Second

// streamFrame is one websocket message pushed to the dashboard ticker.
type streamFrame struct {
	Bits    string  `json:"bits"`
	Length  int     `json:"length"`
	Zeros   int     `json:"zeros"`
	Ones    int     `json:"ones"`
	Entropy float64 `json:"entropy"`
	TS      string  `json:"ts"`
}

// streamHandler upgrades GET requests to a websocket pushing fresh samples.
func (h *Handler) streamHandler() http.Handler {
	ws := websocket.Handler(h.serveStream)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		ws.ServeHTTP(w, r)
	})
}

// serveStream generates a small sample per tick until the peer disconnects.
func (h *Handler) serveStream(conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	ctx := conn.Request().Context()
	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		result, err := h.service.Generate(ctx, streamSampleBits)
		if err != nil {
			log.Printf("stream sample: %v", err)
			return
		}
		frame := streamFrame{
			Bits:    result.Bits,
			Length:  result.Stats.Length,
			Zeros:   result.Stats.Zeros,
			Ones:    result.Stats.Ones,
			Entropy: result.Stats.Entropy,
			TS:      result.Timestamp.UTC().Format(time.RFC3339Nano),
		}
		if err := websocket.JSON.Send(conn, frame); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
