// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// sampler.go — the Sampler handle and its floating-point primitive.
//
// Concurrency:
//   • math/rand.Rand is not goroutine-safe; Sampler serializes access with a
//     mutex, so one Sampler may be shared freely.
//   • Draw order across goroutines is unspecified. For reproducible parallel
//     work, give each goroutine its own Fork.

package sample

import (
	"math"
	"math/rand"
	"sync"
)

// Sampler draws bounded uniform values from a generator it owns.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Sampler configured by opts. Without a seeding option the
// generator is seeded from crypto/rand.
func New(opts ...Option) *Sampler {
	cfg := newSamplerConfig(opts...)

	return &Sampler{rng: cfg.rng}
}

var defaultSampler = sync.OnceValue(func() *Sampler { return New() })

// Default returns a process-wide, entropy-seeded Sampler for callers that
// do not need reproducibility. It is safe for concurrent use.
func Default() *Sampler {
	return defaultSampler()
}

// Fork returns an independent Sampler whose seed is derived from one draw of
// s and the stream id. Forks of the same seeded parent, taken in the same
// order, are reproducible.
// Complexity: O(1).
func (s *Sampler) Fork(stream uint64) *Sampler {
	s.mu.Lock()
	parent := s.rng.Int63()
	s.mu.Unlock()

	return &Sampler{rng: rand.New(rand.NewSource(deriveSeed(parent, stream)))}
}

// unit returns u ∈ [0, 1).
func (s *Sampler) unit() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

// Float64 returns u·((max + 1) − min) + min for u ∈ [0, 1).
//
// Errors (all match ErrInvalidArgument):
//   - ErrNegativeMin     when min < 0
//   - ErrInvertedBounds  when max < min
//   - ErrNonFinite       when min or max is NaN or infinite
//
// Complexity: O(1).
func (s *Sampler) Float64(min, max float64) (float64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, sampleErrorf(methodFloat64, err, "min=%v max=%v", min, max)
	}

	return s.draw(min, max), nil
}

// Bool returns true or false with equal probability.
func (s *Sampler) Bool() bool {
	return s.unit()*2 >= 1
}

// draw applies the sampling formula to a validated range.
func (s *Sampler) draw(min, max float64) float64 {
	return s.unit()*((max+1)-min) + min
}

// checkRange validates a sampling range; the NaN check comes first so that
// NaN never slips past the ordered comparisons.
func checkRange(min, max float64) error {
	switch {
	case math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0):
		return ErrNonFinite
	case min < 0:
		return ErrNegativeMin
	case max < min:
		return ErrInvertedBounds
	}

	return nil
}
