// Package euler provides tunable options, error definitions, and the Arc
// step type for Euler-tour construction over a core.Graph.
package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulertour/core"
)

// Sentinel errors for tour construction and the Eulerian predicate.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrDirectedRequired is returned when NewDirectedTour receives an
	// undirected graph.
	ErrDirectedRequired = errors.New("euler: directed graph required")

	// ErrUndirectedRequired is returned when NewUndirectedTour receives a
	// directed graph.
	ErrUndirectedRequired = errors.New("euler: undirected graph required")

	// ErrStartVertexNotFound is returned when the start ID passed via
	// WithStart is absent from the graph.
	ErrStartVertexNotFound = errors.New("euler: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("euler: invalid option supplied")
)

// Arc is one tour step: the edge identified by EdgeID, crossed from From to
// To. In a directed tour the orientation always matches the stored arc; in
// an undirected tour From/To record the direction the walk actually took,
// while EdgeID names the undirected edge being consumed (resolve it with
// core.Graph.Edge for endpoints as inserted, and weight).
//
// Arc is comparable; the zero value is the exhaustion sentinel ArcInvalid.
type Arc struct {
	// EdgeID is the identity of the traversed edge.
	EdgeID string

	// From is the vertex the step leaves.
	From string

	// To is the vertex the step enters.
	To string
}

// ArcInvalid is the sentinel returned by Arc and Next once a tour is
// exhausted. Compare with == to detect the end of iteration.
var ArcInvalid Arc

// Valid reports whether a is a real tour step rather than the sentinel.
func (a Arc) Valid() bool {
	return a != ArcInvalid
}

// String renders the step as “From→To”, or “invalid” for the sentinel.
func (a Arc) String() string {
	if !a.Valid() {
		return "invalid"
	}

	return a.From + "→" + a.To
}

// Option configures tour construction via functional arguments.
// If an Option is invalid (e.g. an empty start ID), it is recorded
// internally and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds parameters customizing tour construction.
type Options struct {
	// Start is the preferred origin of the walk. Empty means no preference:
	// the constructor scans vertices in ascending order for the first one
	// with an outgoing arc.
	Start string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no preferred start (ascending-order
// scan) and a clear error slot.
func DefaultOptions() Options {
	return Options{}
}

// WithStart prefers the given vertex as the walk origin. The vertex must
// exist in the graph (otherwise the constructor returns
// ErrStartVertexNotFound); if it exists but has no outgoing arcs, the
// origin silently falls back to the ascending-order scan.
//
// An empty ID is invalid → ErrOptionViolation (use no option at all for
// “no preference”).
func WithStart(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.err = fmt.Errorf("%w: start ID must be non-empty", ErrOptionViolation)
			return
		}
		o.Start = id
	}
}

// arcCursor tracks one vertex's next unexplored out-arc: a stable snapshot
// of the out-arc list plus the position of the next candidate. A cursor
// only ever moves forward.
type arcCursor struct {
	arcs []*core.Edge
	pos  int
}

// exhausted reports whether every out-arc has been passed.
func (c *arcCursor) exhausted() bool {
	return c.pos >= len(c.arcs)
}

// resolveStart picks the walk origin: the preferred vertex when it exists
// and has at least one outgoing arc, otherwise the first vertex in
// ascending order with one. An empty result means the graph has no arcs at
// all and the tour is empty.
func resolveStart(g *core.Graph, preferred string) (string, error) {
	if preferred != "" {
		if !g.HasVertex(preferred) {
			return "", fmt.Errorf("start %q: %w", preferred, ErrStartVertexNotFound)
		}
		deg, err := g.OutDegree(preferred)
		if err != nil {
			return "", err
		}
		if deg > 0 {
			return preferred, nil
		}
		// No out-arcs at the preferred vertex: fall through to the scan.
	}
	for _, id := range g.Vertices() {
		deg, err := g.OutDegree(id)
		if err != nil {
			return "", err
		}
		if deg > 0 {
			return id, nil
		}
	}

	return "", nil
}
