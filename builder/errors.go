// SPDX-License-Identifier: MIT
// Package: eulertour/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w.
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, petalLen) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewPetals indicates that Rose was asked for fewer than one petal.
// Usage: if errors.Is(err, ErrTooFewPetals) { /* report invalid count */ }.
var ErrTooFewPetals = errors.New("builder: too few petals")

// ErrConstructFailed indicates an orchestration failure, such as a nil
// Constructor handed to BuildGraph.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
