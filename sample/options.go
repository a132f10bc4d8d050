// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// options.go — functional options for New.
//
// Contract:
//   • Options mutate a samplerConfig before the Sampler is built; later
//     options override earlier ones.
//   • Option constructors panic on nil input. Sampling methods never panic.
//   • Determinism is explicit: WithSeed, WithRand or WithSource.

package sample

import "math/rand"

// Option customizes a Sampler built by New.
type Option func(*samplerConfig)

// samplerConfig aggregates the knobs New understands.
type samplerConfig struct {
	// Generator used for every draw; nil means "seed from entropy".
	rng *rand.Rand
}

// WithSeed builds the generator from seed, so the draw sequence is
// reproducible. Seed 0 maps to DefaultSeed.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand hands an existing generator to the Sampler. The Sampler takes
// ownership: callers must not draw from r directly afterwards.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// WithSource builds the generator over src. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sample: WithSource(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = rand.New(src)
	}
}

// newSamplerConfig applies opts in order and resolves a missing generator.
// Complexity: O(len(opts)).
func newSamplerConfig(opts ...Option) samplerConfig {
	var cfg samplerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(entropySeed()))
	}

	return cfg
}
