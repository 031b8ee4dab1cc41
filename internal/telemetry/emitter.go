// Package telemetry records per-generation operational events.
package telemetry

import (
	"context"
	"time"

	"github.com/themugglecoder/quantumrand/internal/storage"
)

// Emitter records generation telemetry events.
type Emitter struct {
	store storage.EventStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.EventStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt storage.GenerationEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendGenerationEvent(ctx, evt)
}
