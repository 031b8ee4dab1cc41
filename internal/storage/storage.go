// Package storage defines persistence contracts for generation telemetry.
//
// Only summary telemetry is persisted. Generated bit sequences are never
// stored; they are discarded once their statistics are computed.
package storage

import (
	"context"
	"time"
)

// GenerationEvent records the outcome of one bit-generation request.
type GenerationEvent struct {
	Length     int
	Zeros      int
	Ones       int
	Entropy    float64
	DurationMS int64
	Source     string
	Timestamp  time.Time
}

// EventStore persists generation telemetry events.
type EventStore interface {
	// AppendGenerationEvent records one event.
	AppendGenerationEvent(ctx context.Context, evt GenerationEvent) error

	// RecentGenerationEvents returns up to limit events, newest first.
	RecentGenerationEvents(ctx context.Context, limit int) ([]GenerationEvent, error)

	// Close releases the store's resources.
	Close() error
}
