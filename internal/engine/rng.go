// Package engine provides the deterministic random number stream that every
// generated scenario is derived from. The generator is Mulberry32: a 32-bit
// state advanced by a fixed increment and mixed into one float per call.
// Identical seeds produce bit-identical streams, which is what makes a
// scenario reproducible from its seed alone.
package engine

import "fmt"

// mulberryIncrement is the fixed state increment of Mulberry32.
const mulberryIncrement uint32 = 0x6D2B79F5

// RNG is a seedable Mulberry32 generator. It is not safe for concurrent use;
// callers that generate scenarios in parallel must hold one RNG each.
type RNG struct {
	state uint32
}

// New creates a generator seeded with the given 32-bit value.
func New(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 advances the stream and returns the next value in [0, 1).
// All arithmetic is 32-bit with wraparound; widening any step would
// diverge from the reference stream after the first addition.
func (r *RNG) Float64() float64 {
	r.state += mulberryIncrement
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Int returns a uniform integer in [lo, hi], inclusive on both ends.
func (r *RNG) Int(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("engine: Int bounds inverted: [%d, %d]", lo, hi))
	}
	n := lo + int(r.Float64()*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// Uniform returns a uniform float in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// WeightedIndex draws an index proportionally to the given weights.
// Returns -1 when the weights sum to zero or less. Ties break toward the
// lower index; if rounding leaves the cursor past every cumulative sum,
// the last index is returned.
func (r *RNG) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	target := r.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if cum >= target {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns a uniformly drawn element of seq. Empty input is a
// programming error.
func Choice[T any](r *RNG, seq []T) T {
	if len(seq) == 0 {
		panic("engine: Choice on empty slice")
	}
	return seq[r.Int(0, len(seq)-1)]
}

// Shuffle returns a shuffled copy of seq, leaving the input untouched.
// Fisher-Yates walking down from the last index.
func Shuffle[T any](r *RNG, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Int(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n distinct elements of seq, drawn as the first n entries
// of a shuffle.
func Sample[T any](r *RNG, seq []T, n int) []T {
	if n < 0 || n > len(seq) {
		panic(fmt.Sprintf("engine: Sample size %d out of range for %d elements", n, len(seq)))
	}
	return Shuffle(r, seq)[:n]
}
