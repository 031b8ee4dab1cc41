package generate

import (
	"strconv"
	"strings"
)

const (
	// DefaultBits is the bit count used when the caller supplies nothing usable.
	DefaultBits = 256

	// MaxBits caps a single request at 256 Ki bits (~32 KiB of symbols) to
	// bound per-request work and response size for interactive demo loads.
	MaxBits = 262144
)

// ResolveLength normalizes raw caller input into a usable bit count.
//
// Absent or unparseable input falls back to def. Parsed values are clamped
// silently into [1, max]; clamping never raises an error, so a caller asking
// for too much simply receives the maximum.
func ResolveLength(raw string, def, max int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	if value < 1 {
		return 1
	}
	if value > max {
		return max
	}
	return value
}
