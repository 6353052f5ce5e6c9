// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// weight_fn.go — edge-weight generators for graph constructors.
//
// Contract:
//   - WeightFn must be deterministic for a given RNG state; a nil RNG
//     yields the deterministic fallback DefaultEdgeWeight.
//   - Generator factories VALIDATE and PANIC on meaningless parameters;
//     the generators themselves never panic.
//   - Weights are consulted only when the target graph is weighted.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to every edge of a weighted
// graph when no custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to keep the fallback deterministic.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			// Degenerate interval: constant.
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
