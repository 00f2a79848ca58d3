// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil                       (no randomness unless seeded)
//   • capacityFn = ConstantCapacityFn(DefaultCapacity)
//   • weightFn   = nil                       (weight follows capacity)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Capacity generator, called once per emitted link.
	capacityFn CapacityFn
	// Optional ranking-weight generator; nil keeps core's default (weight = capacity).
	weightFn CapacityFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capacityFn: ConstantCapacityFn(DefaultCapacity),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
