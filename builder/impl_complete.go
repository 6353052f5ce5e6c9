// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, and mirrors to
//     j→i only if g.Directed() is true.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Undirected K_n is Eulerian iff n is odd (every degree is n-1); the
// directed variant carries both orientations of every pair and is always
// balanced, hence Eulerian for n ≥ 2.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation: K_n is defined for n≥1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Preallocate and fill the vertex ID slice in deterministic order.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			// Compute vertex ID for index i via the configured scheme.
			ids[i] = cfg.idFn(i)
			// Insert vertex into the core graph; core enforces mode invariants.
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		// Cache whether weights are observed by the core graph.
		useWeight := g.Weighted()

		// Emit each unordered pair {i,j} with i<j in stable order.
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]

				// Decide edge weight once per emission (deterministic per RNG).
				var w int64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}

				// Add u→v (core handles undirected mirroring itself).
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, u, v, w, err)
				}

				// If the graph is directed, also add v→u for symmetry of K_n.
				if g.Directed() {
					if useWeight {
						w = cfg.weightFn(cfg.rng)
					}
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, v, u, w, err)
					}
				}
			}
		}

		// Success: complete graph fully constructed.
		return nil
	}
}
