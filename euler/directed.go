package euler

import (
	"container/list"
	"iter"

	"github.com/katalvlaran/eulertour/core"
)

// DirectedTour is a lazy Euler tour over a directed graph. It emits every
// reachable arc exactly once, discovering and splicing sub-circuits on
// demand as steps are drawn.
//
// A tour is not restartable and not safe for concurrent use; construct a
// new one to retraverse.
type DirectedTour struct {
	g      *core.Graph
	cursor map[string]*arcCursor
	trail  *list.List // of Arc
}

// NewDirectedTour constructs a tour over g, optionally anchored with
// WithStart. If no start is given, or the given start has no outgoing arcs,
// the first vertex in ascending order with an out-arc is used; if no vertex
// has one, the tour is empty.
//
// Returns ErrNilGraph, ErrDirectedRequired, ErrStartVertexNotFound,
// ErrOptionViolation.
// Complexity: O(V + E) — cursor setup plus the initial walk.
func NewDirectedTour(g *core.Graph, opts ...Option) (*DirectedTour, error) {
	// 1) Input validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrDirectedRequired
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &DirectedTour{
		g:      g,
		cursor: make(map[string]*arcCursor, g.VertexCount()),
		trail:  list.New(),
	}

	// 2) Resolve the walk origin; no origin means no arcs anywhere
	start, err := resolveStart(g, o.Start)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return t, nil
	}

	// 3) One cursor per vertex, positioned at its first out-arc
	for _, id := range g.Vertices() {
		out, err := g.OutEdges(id)
		if err != nil {
			return nil, err
		}
		t.cursor[id] = &arcCursor{arcs: out}
	}

	// 4) Initial walk: follow fresh arcs until a dead cursor
	cur := start
	for {
		c := t.cursor[cur]
		if c.exhausted() {
			break
		}
		e := c.arcs[c.pos]
		t.trail.PushBack(Arc{EdgeID: e.ID, From: e.From, To: e.To})
		c.pos++
		cur = e.To
	}

	return t, nil
}

// Valid reports whether the tour still has steps to emit.
func (t *DirectedTour) Valid() bool {
	return t.trail.Len() > 0
}

// Arc returns the step Next would emit, without advancing. Idempotent:
// repeated calls return the same value. Returns ArcInvalid once the tour is
// exhausted.
func (t *DirectedTour) Arc() Arc {
	front := t.trail.Front()
	if front == nil {
		return ArcInvalid
	}

	return front.Value.(Arc)
}

// Next emits the current step and performs the lazy merge. Returns
// ArcInvalid once the tour is exhausted.
//
// Complexity: O(1 + k) where k is the length of the sub-circuit discovered
// at this step; k sums to at most E over a whole drain.
func (t *DirectedTour) Next() Arc {
	// 1) Pop the front arc; an empty trail means exhaustion
	front := t.trail.Front()
	if front == nil {
		return ArcInvalid
	}
	step := front.Value.(Arc)
	t.trail.Remove(front)

	// 2) Fold the unexplored arcs at the popped arc's target into the trail
	//    right where the traversal is passing: the fresh sub-circuit lands
	//    before the remaining front, in walk order.
	mark := t.trail.Front()
	s := step.To
	for {
		c := t.cursor[s]
		if c.exhausted() {
			break
		}
		e := c.arcs[c.pos]
		a := Arc{EdgeID: e.ID, From: e.From, To: e.To}
		if mark != nil {
			t.trail.InsertBefore(a, mark)
		} else {
			t.trail.PushBack(a)
		}
		c.pos++
		s = e.To
	}

	return step
}

// Seq returns a range-over-func view draining the remaining steps. Ranging
// consumes the tour; breaking leaves it positioned at the first undrawn
// step.
func (t *DirectedTour) Seq() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for t.Valid() {
			if !yield(t.Next()) {
				return
			}
		}
	}
}

// DirectedTrail constructs a tour over g and drains it into a slice. For
// Eulerian graphs the result covers every arc exactly once and is closed;
// otherwise it is the partial trail the lazy walk produces.
//
// Returns the same errors as NewDirectedTour.
// Complexity: O(V + E).
func DirectedTrail(g *core.Graph, opts ...Option) ([]Arc, error) {
	t, err := NewDirectedTour(g, opts...)
	if err != nil {
		return nil, err
	}
	arcs := make([]Arc, 0, g.EdgeCount())
	for t.Valid() {
		arcs = append(arcs, t.Next())
	}

	return arcs, nil
}
