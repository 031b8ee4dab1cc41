package web

import (
	"log"
	"net/http"
	"time"

	"github.com/themugglecoder/quantumrand/internal/generate"
	"github.com/themugglecoder/quantumrand/internal/services/web/platform/httpx"
	"github.com/themugglecoder/quantumrand/internal/services/web/platform/observability"
	"github.com/themugglecoder/quantumrand/internal/services/web/static"
	"github.com/themugglecoder/quantumrand/internal/services/web/templates"
	"github.com/themugglecoder/quantumrand/internal/storage"
)

// dashboardPresets are the preset bit lengths offered by the dashboard.
var dashboardPresets = []int{128, 256, 512, 1024, 4096}

// historyPageSize bounds how many telemetry rows the dashboard and the
// history endpoint return.
const historyPageSize = 20

// Handler serves the dashboard and the generation API.
type Handler struct {
	service *generate.Service
	history storage.EventStore
	clock   func() time.Time
}

// NewHandler builds the root HTTP handler with its middleware chain.
func NewHandler(service *generate.Service, history storage.EventStore) http.Handler {
	h := &Handler{
		service: service,
		history: history,
		clock:   time.Now,
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("/generate", h.handleGenerate)
	mux.Handle("/api/history", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.handleHistory)))
	mux.Handle("/healthz", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(handleHealthz)))
	mux.Handle("/stream", h.streamHandler())
	mux.HandleFunc("/", h.handleDashboard)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var history []storage.GenerationEvent
	if h.history != nil {
		events, err := h.history.RecentGenerationEvents(httpx.RequestContext(r), historyPageSize)
		if err != nil {
			log.Printf("load generation history: %v", err)
		} else {
			history = events
		}
	}

	page := templates.Dashboard(templates.DashboardProps{
		DefaultBits: generate.DefaultBits,
		MaxBits:     generate.MaxBits,
		Presets:     dashboardPresets,
		History:     history,
		Now:         h.now(),
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(httpx.RequestContext(r), w); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

func (h *Handler) now() time.Time {
	if h == nil || h.clock == nil {
		return time.Now()
	}
	return h.clock()
}
