// Package bits generates uniformly random bit sequences from a
// cryptographically secure randomness source.
package bits

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrNegativeLength indicates a caller requested a negative bit count.
var ErrNegativeLength = errors.New("bit length must be non-negative")

// ErrSourceUnavailable indicates the secure randomness source failed to
// produce bytes. Callers must propagate it; falling back to a weaker
// generator is never acceptable.
var ErrSourceUnavailable = errors.New("entropy source unavailable")

// Sequence is an ordered sequence of '0'/'1' symbols.
type Sequence string

// Len returns the number of symbols in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Source supplies cryptographically strong random bytes.
//
// Implementations must be safe for concurrent use. Tests may substitute a
// deterministic source, but production code always uses CryptoSource.
type Source interface {
	io.Reader

	// Name identifies the randomness source in responses.
	Name() string
}

// CryptoSource reads from the operating system CSPRNG via crypto/rand.
type CryptoSource struct{}

// Read fills p with random bytes from crypto/rand.
func (CryptoSource) Read(p []byte) (int, error) {
	return crand.Read(p)
}

// Name identifies the crypto/rand source.
func (CryptoSource) Name() string {
	return "crypto/rand"
}

// Generator produces random bit sequences from a Source.
//
// A Generator holds no mutable state and is safe for concurrent use as long
// as its Source is.
type Generator struct {
	source Source
}

// NewGenerator creates a generator backed by the given source.
func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// Source returns the generator's randomness source.
func (g *Generator) Source() Source {
	if g == nil {
		return nil
	}
	return g.source
}

// Generate returns a sequence of exactly n uniformly random bits.
//
// It draws ceil(n/8) bytes from the source in a single read and expands each
// byte most-significant-bit first. Excess low-order bits of the final byte
// are discarded; no bit is reused or resampled, so every kept bit stays
// independent and uniform.
func (g *Generator) Generate(n int) (Sequence, error) {
	if g == nil || g.source == nil {
		return "", fmt.Errorf("%w: no source configured", ErrSourceUnavailable)
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	if n == 0 {
		return "", nil
	}

	raw := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(g.source, raw); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	symbols := make([]byte, n)
	for i := range symbols {
		if raw[i/8]>>(7-i%8)&1 == 1 {
			symbols[i] = '1'
		} else {
			symbols[i] = '0'
		}
	}
	return Sequence(symbols), nil
}
