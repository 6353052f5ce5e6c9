// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n counts the center plus leaves.
//   - Center carries the fixed ID "Center"; leaves use cfg.idFn(1..n-1).
//   - Emits spokes in stable order Center → leaf_i for i=1..n-1.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Fixed center ID; deterministic leaf IDs via cfg.idFn; stable emission.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// File-local constants (method tag, fixed hub ID, parameter minimum).
const (
	methodStar   = "Star"
	starCenterID = "Center"
	minStarNodes = 2
)

// Star returns a Constructor that builds an n-vertex star. Every leaf has
// degree 1, so the result is never Eulerian for n ≥ 3.
func Star(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// Insert the fixed-ID center first.
		if err := g.AddVertex(starCenterID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, starCenterID, err)
		}

		// Cache whether weights are observed by the core graph.
		useWeight := g.Weighted()

		// Emit leaves and spokes in ascending index order.
		for i := 1; i < n; i++ {
			// Compute the leaf ID for index i.
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}

			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}

			// Spoke from the center; core handles orientation per its flags.
			if _, err := g.AddEdge(starCenterID, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, starCenterID, leaf, w, err)
			}
		}

		// Success: star fully constructed.
		return nil
	}
}
