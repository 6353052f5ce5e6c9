// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i → i+1 for i=0..n-2.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn; deterministic emission by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// File-local constants (stable method tag and parameter minimum).
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n. The endpoints
// keep odd degree (or unbalanced in/out), so the result is never Eulerian.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		// Precompute whether weights are observed by the core graph.
		useWeight := g.Weighted()

		// Emit the chain edges in ascending i.
		for i := 0; i < n-1; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn(i + 1)

			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}

			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodPath, uID, vID, w, err)
			}
		}

		// Success: path fully constructed.
		return nil
	}
}
