// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// impl_rose.go — implementation of Rose(petals, petalLen) constructor.
//
// Contract:
//   - petals ≥ 1 (else ErrTooFewPetals); petalLen ≥ 3 (else ErrTooFewVertices).
//   - Hub is cfg.idFn(0); petal p uses interior vertices
//     cfg.idFn(1 + p·(petalLen-1) + k) for k=0..petalLen-2.
//   - Emits each petal as a ring through the hub, petals in ascending p,
//     edges along the walk: hub → v0 → v1 → … → hub.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn; stable petal and edge emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// File-local constants (method tag and parameter minima).
const (
	methodRose    = "Rose"
	minRosePetals = 1
	minPetalNodes = 3
)

// Rose returns a Constructor that builds a bouquet of petal cycles sharing
// one hub. Every vertex ends up with even, balanced incidence, so the
// result is Eulerian in either orientation; each petal is a sub-circuit
// through the hub, making Rose the canonical splice-merge fixture
// (Rose(2,3) is the “figure eight”).
func Rose(petals, petalLen int) Constructor {
	// The returned closure captures the petal shape; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation, petal count first.
		if petals < minRosePetals {
			return fmt.Errorf("%s: petals=%d < min=%d: %w", methodRose, petals, minRosePetals, ErrTooFewPetals)
		}
		if petalLen < minPetalNodes {
			return fmt.Errorf("%s: petalLen=%d < min=%d: %w", methodRose, petalLen, minPetalNodes, ErrTooFewVertices)
		}

		// Insert the shared hub.
		hub := cfg.idFn(0)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodRose, hub, err)
		}

		// Cache whether weights are observed by the core graph.
		useWeight := g.Weighted()

		// interior is the number of non-hub vertices per petal.
		interior := petalLen - 1

		// Emit petals in ascending order.
		for p := 0; p < petals; p++ {
			// prev tracks the walk position, starting at the hub.
			prev := hub
			for k := 0; k < interior; k++ {
				// Compute the interior vertex ID for petal p, slot k.
				id := cfg.idFn(1 + p*interior + k)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodRose, id, err)
				}

				var w int64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}

				// Walk edge prev → id.
				if _, err := g.AddEdge(prev, id, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRose, prev, id, w, err)
				}
				prev = id
			}

			// Close the petal back into the hub.
			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}
			if _, err := g.AddEdge(prev, hub, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRose, prev, hub, w, err)
			}
		}

		// Success: rose fully constructed.
		return nil
	}
}
