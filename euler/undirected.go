package euler

import (
	"container/list"
	"iter"

	"github.com/katalvlaran/eulertour/core"
)

// UndirectedTour is a lazy Euler tour over an undirected graph. Each edge is
// consumed exactly once, whichever orientation the walk crosses it in; the
// emitted Arc records the direction actually taken and names the consumed
// edge via EdgeID.
//
// A tour is not restartable and not safe for concurrent use; construct a
// new one to retraverse.
type UndirectedTour struct {
	g       *core.Graph
	cursor  map[string]*arcCursor
	visited map[string]bool // edge ID → already consumed
	trail   *list.List      // of Arc
}

// NewUndirectedTour constructs a tour over g, optionally anchored with
// WithStart. Start resolution matches NewDirectedTour: explicit start if it
// has an incident edge, otherwise the first vertex in ascending order with
// one, otherwise an empty tour.
//
// Returns ErrNilGraph, ErrUndirectedRequired, ErrStartVertexNotFound,
// ErrOptionViolation.
// Complexity: O(V + E) — cursor setup plus the initial walk.
func NewUndirectedTour(g *core.Graph, opts ...Option) (*UndirectedTour, error) {
	// 1) Input validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrUndirectedRequired
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &UndirectedTour{
		g:       g,
		cursor:  make(map[string]*arcCursor, g.VertexCount()),
		visited: make(map[string]bool, g.EdgeCount()),
		trail:   list.New(),
	}

	// 2) Resolve the walk origin; no origin means no edges anywhere
	start, err := resolveStart(g, o.Start)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return t, nil
	}

	// 3) One cursor per vertex over its incident-edge list
	for _, id := range g.Vertices() {
		out, err := g.OutEdges(id)
		if err != nil {
			return nil, err
		}
		t.cursor[id] = &arcCursor{arcs: out}
	}

	// 4) Initial walk: follow fresh edges until a dead cursor, marking each
	//    edge consumed before moving so its mirror is never chosen
	cur := start
	for {
		c := t.skip(cur)
		if c.exhausted() {
			break
		}
		e := c.arcs[c.pos]
		step := orient(e, cur)
		t.trail.PushBack(step)
		t.visited[e.ID] = true
		c.pos++
		cur = step.To
	}

	return t, nil
}

// skip advances id's cursor past edges already consumed and returns the
// cursor. It runs on every consult — eligibility is re-checked each time a
// cursor is examined, because edges ahead of a parked cursor may have been
// consumed from their other endpoint since the last look.
func (t *UndirectedTour) skip(id string) *arcCursor {
	c := t.cursor[id]
	for c.pos < len(c.arcs) && t.visited[c.arcs[c.pos].ID] {
		c.pos++
	}

	return c
}

// orient renders edge e as a step taken while standing at vertex at.
// A self-loop stays at its vertex.
func orient(e *core.Edge, at string) Arc {
	to := e.To
	if to == at && e.From != at {
		to = e.From
	}

	return Arc{EdgeID: e.ID, From: at, To: to}
}

// Valid reports whether the tour still has steps to emit.
func (t *UndirectedTour) Valid() bool {
	return t.trail.Len() > 0
}

// Arc returns the step Next would emit, without advancing. Idempotent:
// repeated calls return the same value. Returns ArcInvalid once the tour is
// exhausted.
func (t *UndirectedTour) Arc() Arc {
	front := t.trail.Front()
	if front == nil {
		return ArcInvalid
	}

	return front.Value.(Arc)
}

// Next emits the current step and performs the lazy merge. Returns
// ArcInvalid once the tour is exhausted.
//
// Complexity: O(1 + k + s) where k is the spliced sub-circuit length and s
// the skipped already-consumed entries; both sum to O(E) over a whole drain.
func (t *UndirectedTour) Next() Arc {
	// 1) Pop the front arc; an empty trail means exhaustion
	front := t.trail.Front()
	if front == nil {
		return ArcInvalid
	}
	step := front.Value.(Arc)
	t.trail.Remove(front)

	// 2) Fold the unconsumed edges at the popped arc's target into the
	//    trail before the remaining front, marking each before moving on.
	mark := t.trail.Front()
	s := step.To
	for {
		c := t.skip(s)
		if c.exhausted() {
			break
		}
		e := c.arcs[c.pos]
		a := orient(e, s)
		if mark != nil {
			t.trail.InsertBefore(a, mark)
		} else {
			t.trail.PushBack(a)
		}
		t.visited[e.ID] = true
		c.pos++
		s = a.To
	}

	return step
}

// Seq returns a range-over-func view draining the remaining steps. Ranging
// consumes the tour; breaking leaves it positioned at the first undrawn
// step.
func (t *UndirectedTour) Seq() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for t.Valid() {
			if !yield(t.Next()) {
				return
			}
		}
	}
}

// UndirectedTrail constructs a tour over g and drains it into a slice. For
// Eulerian graphs the result covers every edge exactly once and is closed;
// otherwise it is the partial trail the lazy walk produces.
//
// Returns the same errors as NewUndirectedTour.
// Complexity: O(V + E).
func UndirectedTrail(g *core.Graph, opts ...Option) ([]Arc, error) {
	t, err := NewUndirectedTour(g, opts...)
	if err != nil {
		return nil, err
	}
	arcs := make([]Arc, 0, g.EdgeCount())
	for t.Valid() {
		arcs = append(arcs, t.Next())
	}

	return arcs, nil
}
