// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// Package builder assembles deterministic graph fixtures for Euler-tour
// work: classic topologies whose Eulerian status is known in advance, built
// on any core.Graph mode (directed or undirected, weighted or not, with or
// without loops and parallel edges).
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.
//     Validation panics are confined to option constructors (WithX...).
//
// Topologies and their Eulerian status:
//   - Cycle(n): Eulerian for every n ≥ 3, both orientations.
//   - Path(n): never Eulerian for n ≥ 2 (odd endpoints / unbalanced ends).
//   - Complete(n): undirected K_n Eulerian iff n is odd (n ≥ 3); the
//     directed variant emits both orientations of every pair and is always
//     balanced, hence Eulerian for n ≥ 2.
//   - Star(n): never Eulerian for n ≥ 3 (leaves have degree 1).
//   - Rose(petals, petalLen): a bouquet of cycles sharing one hub — always
//     Eulerian, and the canonical fixture for exercising sub-circuit
//     splicing (Rose(2,3) is the “figure eight”).
//
// Errors: ErrTooFewVertices, ErrTooFewPetals, ErrConstructFailed.
package builder
