package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad length"), want: http.StatusBadRequest},
		{name: "unavailable", err: E(KindUnavailable, "entropy source down"), want: http.StatusServiceUnavailable},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "internal", err: E(KindInternal, "invariant violated"), want: http.StatusInternalServerError},
		{name: "untyped", err: stderrors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("handler: %w", E(KindUnavailable, "down")), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("read failed")
	err := Wrap(KindUnavailable, "entropy source unavailable", cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
	if KindOf(err) != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", KindOf(err), KindUnavailable)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	err := E(KindInternal, "")
	if err.Error() != string(KindInternal) {
		t.Fatalf("Error() = %q, want %q", err.Error(), KindInternal)
	}
}
