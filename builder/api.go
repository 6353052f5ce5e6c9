// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go
//     (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context "BuildGraph: %w"
// and returned immediately; no partial cleanup is attempted.
//
// Errors: wraps constructor errors via %w; callers should branch with
// errors.Is against builder sentinels (ErrTooFewVertices, ErrTooFewPetals,
// ErrConstructFailed).
// Complexity: O(len(bopts)) resolution plus the summed constructor cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create a new graph using the provided core graph options.
	g := core.NewGraph(gopts...)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor; implementations return errors, never panic.
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers add method context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Success: return the fully constructed graph.
	return g, nil
}

// =============================================================================
// Topology factories (declarations) — implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except documented fixed IDs like "Center").
//   - Emit edges in a stable, documented order.
//   - Honor core flags (Directed/Weighted/Loops/Multigraph) without silent
//     degrade.
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.
//func Path(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1); directed graphs
// receive both orientations of every pair.
// Complexity: O(n) vertices + O(n²) edges; O(n) extra space.
//func Complete(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.
//func Star(n int) Constructor

// Rose builds a bouquet of petal cycles sharing the hub vertex cfg.idFn(0)
// (petals ≥ 1, petalLen ≥ 3).
// Complexity: O(petals·petalLen) vertices and edges; O(1) extra space.
//func Rose(petals, petalLen int) Constructor
