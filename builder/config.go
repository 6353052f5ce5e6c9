// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn     = decimalID ("0","1","2",...)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import (
	"math/rand" // RNG feeding the weight generator when seeded
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for weight draws; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; consulted only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last-wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
