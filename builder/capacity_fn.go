package builder

import (
	"fmt"
	"math/rand"
)

// DefaultCapacity is the link capacity used when no CapacityFn is provided.
const DefaultCapacity float64 = 10

// CapacityFn produces a link capacity (or ranking weight) given an optional
// *rand.Rand source. It must be deterministic for a given RNG seed.
type CapacityFn func(rng *rand.Rand) float64

// ConstantCapacityFn returns a CapacityFn that always yields value.
// Panics if value ≤ 0.
func ConstantCapacityFn(value float64) CapacityFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformCapacityFn returns a CapacityFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max. With a nil rng it yields min.
func UniformCapacityFn(min, max float64) CapacityFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// TieredCapacityFn returns a CapacityFn picking one of tiers uniformly,
// e.g. TieredCapacityFn(10, 40, 100) for mixed line rates.
// Panics on an empty list or a non-positive tier. With a nil rng it yields tiers[0].
func TieredCapacityFn(tiers ...float64) CapacityFn {
	if len(tiers) == 0 {
		panic("TieredCapacityFn: at least one tier is required")
	}
	for _, t := range tiers {
		if !(t > 0) {
			panic(fmt.Sprintf("TieredCapacityFn: tiers must be > 0, got %g", t))
		}
	}
	own := append([]float64(nil), tiers...)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return own[0]
		}

		return own[rng.Intn(len(own))]
	}
}
