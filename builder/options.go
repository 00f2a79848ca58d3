// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-link capacity generator. Panics on nil.
func WithCapacityFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}

	return func(c *builderConfig) { c.capacityFn = fn }
}

// WithWeightFn sets a ranking-weight generator independent of capacity.
// Panics on nil.
func WithWeightFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithCapacity sets a fixed capacity for every link.
func WithCapacity(c float64) BuilderOption {
	return WithCapacityFn(ConstantCapacityFn(c))
}

// WithUniformCapacity draws capacities from U[min, max).
func WithUniformCapacity(min, max float64) BuilderOption {
	return WithCapacityFn(UniformCapacityFn(min, max))
}

// WithTieredCapacity draws each capacity uniformly from tiers.
func WithTieredCapacity(tiers ...float64) BuilderOption {
	return WithCapacityFn(TieredCapacityFn(tiers...))
}
