// Package generate orchestrates bit generation, statistics, and telemetry
// for a single randomness request.
package generate

import (
	"context"
	"errors"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/themugglecoder/quantumrand/internal/core/bits"
	"github.com/themugglecoder/quantumrand/internal/core/entropy"
	apperrors "github.com/themugglecoder/quantumrand/internal/platform/errors"
	"github.com/themugglecoder/quantumrand/internal/storage"
	"github.com/themugglecoder/quantumrand/internal/telemetry"
)

const tracerName = "github.com/themugglecoder/quantumrand/internal/generate"

// Result aggregates everything produced for one generation request.
//
// The bit sequence lives only inside Result; nothing retains it after the
// response is written.
type Result struct {
	Bits       string
	Stats      entropy.Stats
	DurationMS int64
	Timestamp  time.Time
	Source     string
}

// Service resolves request lengths, generates bits, and derives statistics.
//
// Service is stateless between requests and safe for concurrent use.
type Service struct {
	generator *bits.Generator
	emitter   *telemetry.Emitter
	clock     func() time.Time
}

// NewService creates a configured generation service.
//
// emitter may be nil when telemetry persistence is disabled.
func NewService(generator *bits.Generator, emitter *telemetry.Emitter) *Service {
	return &Service{
		generator: generator,
		emitter:   emitter,
		clock:     time.Now,
	}
}

// Generate turns raw caller input into a fresh random bit sequence with
// statistics and timing attached.
//
// Length resolution is silent: malformed input uses DefaultBits, out-of-range
// input is clamped into [1, MaxBits]. Source failures propagate as
// unavailable errors; the service never substitutes weaker randomness.
func (s *Service) Generate(ctx context.Context, rawLength string) (Result, error) {
	if s == nil || s.generator == nil {
		return Result{}, apperrors.E(apperrors.KindInternal, "generation service is not configured")
	}

	length := ResolveLength(rawLength, DefaultBits, MaxBits)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "generate.bits",
		trace.WithAttributes(attribute.Int("bits.length", length)),
	)
	defer span.End()

	start := time.Now()
	seq, err := s.generator.Generate(length)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, bits.ErrSourceUnavailable) {
			return Result{}, apperrors.Wrap(apperrors.KindUnavailable, "entropy source unavailable", err)
		}
		if errors.Is(err, bits.ErrNegativeLength) {
			return Result{}, apperrors.Wrap(apperrors.KindInvalidInput, "invalid bit length", err)
		}
		return Result{}, apperrors.Wrap(apperrors.KindInternal, "generate bits", err)
	}
	stats := entropy.Analyze(seq)
	durationMS := time.Since(start).Milliseconds()

	// Count mismatches here mean a bug in the engine, never caller input.
	if stats.Length != length || stats.Zeros+stats.Ones != stats.Length {
		return Result{}, apperrors.E(apperrors.KindInternal, "generation result counts do not match length")
	}
	span.SetAttributes(attribute.Float64("bits.entropy", stats.Entropy))

	result := Result{
		Bits:       string(seq),
		Stats:      stats,
		DurationMS: durationMS,
		Timestamp:  s.now().UTC(),
		Source:     s.generator.Source().Name(),
	}

	if err := s.emitter.Emit(ctx, storage.GenerationEvent{
		Length:     stats.Length,
		Zeros:      stats.Zeros,
		Ones:       stats.Ones,
		Entropy:    stats.Entropy,
		DurationMS: durationMS,
		Source:     result.Source,
		Timestamp:  result.Timestamp,
	}); err != nil {
		// Telemetry loss never fails the request.
		log.Printf("emit generation event: %v", err)
	}

	return result, nil
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}
