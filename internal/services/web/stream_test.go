package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"
)

func dialStream(t *testing.T, handler http.Handler) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func TestStreamPushesSamples(t *testing.T) {
	t.Parallel()

	conn := dialStream(t, newTestHandler(t, nil))
	_ = conn.SetDeadline(time.Now().Add(2 * time.Second))

	var frame streamFrame
	if err := websocket.JSON.Receive(conn, &frame); err != nil {
		t.Fatalf("receive frame: %v", err)
	}
	if len(frame.Bits) != 64 {
		t.Fatalf("bits length = %d, want 64", len(frame.Bits))
	}
	if frame.Zeros+frame.Ones != 64 {
		t.Fatalf("zeros+ones = %d, want 64", frame.Zeros+frame.Ones)
	}
	if _, err := time.Parse(time.RFC3339Nano, frame.TS); err != nil {
		t.Fatalf("ts %q is not RFC 3339: %v", frame.TS, err)
	}
}

func TestStreamRejectsNonGET(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stream", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
