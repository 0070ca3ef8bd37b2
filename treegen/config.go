// SPDX-License-Identifier: MIT
// Package: treetrip/treegen
//
// config.go — generator configuration and functional options.
//
// Deterministic defaults: rng = nil (shapes/profiles that need randomness
// return ErrNeedRandSource instead of inventing a seed).

package treegen

import "math/rand"

// config is passed by value to shapes and profiles.
type config struct {
	rng *rand.Rand
}

// Option mutates the generator configuration.
type Option func(*config)

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treegen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
