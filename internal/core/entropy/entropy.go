// Package entropy computes descriptive statistics over bit sequences.
package entropy

import (
	"math"
	"strings"

	"github.com/themugglecoder/quantumrand/internal/core/bits"
)

// Stats summarizes the symbol distribution of a bit sequence.
type Stats struct {
	Length  int
	Zeros   int
	Ones    int
	Entropy float64
}

// Analyze counts symbol populations and computes the binary Shannon entropy
// of seq.
//
// Entropy is H = -Σ p·log2(p) over the two symbol values, bounded in [0, 1].
// The p == 0 term is defined as 0 via an explicit branch rather than relying
// on floating-point log semantics. An empty sequence has zero entropy.
func Analyze(seq bits.Sequence) Stats {
	n := seq.Len()
	zeros := strings.Count(string(seq), "0")
	ones := n - zeros
	if n == 0 {
		return Stats{}
	}

	p0 := float64(zeros) / float64(n)
	p1 := float64(ones) / float64(n)
	return Stats{
		Length:  n,
		Zeros:   zeros,
		Ones:    ones,
		Entropy: term(p0) + term(p1),
	}
}

// term is one -p·log2(p) entropy contribution, zero at p == 0.
func term(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log2(p)
}
