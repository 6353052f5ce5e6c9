// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		// Assign the provided function; used by all topology builders.
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for weight draws.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible weight draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the (possibly nil) RNG and must derive its result only from that
// RNG state to preserve determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		// Fail fast; weight policy must be explicit if customized.
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		// Store generator; consulted only when the core graph is weighted.
		c.weightFn = fn
	}
}
