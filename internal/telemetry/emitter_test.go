package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/themugglecoder/quantumrand/internal/storage"
)

type recordingStore struct {
	events []storage.GenerationEvent
}

func (s *recordingStore) AppendGenerationEvent(_ context.Context, evt storage.GenerationEvent) error {
	s.events = append(s.events, evt)
	return nil
}

func (s *recordingStore) RecentGenerationEvents(context.Context, int) ([]storage.GenerationEvent, error) {
	return s.events, nil
}

func (s *recordingStore) Close() error { return nil }

func TestEmitRecordsEvent(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	emitter := NewEmitter(store)
	evt := storage.GenerationEvent{Length: 16, Zeros: 8, Ones: 8, Entropy: 1}
	if err := emitter.Emit(context.Background(), evt); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if len(store.events) != 1 {
		t.Fatalf("stored events = %d, want 1", len(store.events))
	}
}

func TestEmitFillsTimestampFromClock(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	fixed := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	emitter := &Emitter{store: store, clock: func() time.Time { return fixed }}
	if err := emitter.Emit(context.Background(), storage.GenerationEvent{}); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !store.events[0].Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", store.events[0].Timestamp, fixed)
	}
}

func TestEmitNoopWithoutStore(t *testing.T) {
	t.Parallel()

	var emitter *Emitter
	if err := emitter.Emit(context.Background(), storage.GenerationEvent{}); err != nil {
		t.Fatalf("Emit() on nil emitter error = %v", err)
	}
	if err := NewEmitter(nil).Emit(context.Background(), storage.GenerationEvent{}); err != nil {
		t.Fatalf("Emit() with nil store error = %v", err)
	}
}
