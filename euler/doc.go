// Package euler builds Euler tours over a core.Graph lazily, one step at a
// time, and decides whether a graph admits a full closed tour at all.
//
// What
//
//   - DirectedTour / UndirectedTour: stateful cursors emitting a tour step
//     per Next call, consuming each arc (directed) or each edge
//     (undirected, either orientation) exactly once.
//   - Eulerian: the predicate — true iff a closed tour covering everything
//     exists (directed: weakly connected with in-degree == out-degree
//     everywhere; undirected: connected with every degree even).
//   - DirectedTrail / UndirectedTrail: one-call construction + drain into a
//     slice of Arc.
//
// How
//
//	Construction walks greedily from the start vertex, following each
//	vertex's next unexplored out-arc until it hits a dead end, and records
//	that walk as the initial trail. Each Next pops the front arc and, at
//	the popped arc's target, walks whatever unexplored arcs remain there,
//	splicing that fresh sub-circuit into the trail exactly where the
//	traversal is passing. This is Hierholzer's algorithm performed
//	incrementally: sub-circuits are discovered and merged on demand instead
//	of in an upfront pass, so the first steps of a huge tour cost only the
//	initial walk.
//
// Partial tours
//
//	A graph that fails the Eulerian predicate still produces a tour: the
//	best-effort walk that consumes as much as it can reach, possibly
//	neither covering every edge nor closing back on the start. That outcome
//	is an ordinary result, not an error — check Eulerian when full
//	coverage matters. No arc or edge is ever emitted twice, Eulerian or
//	not.
//
// Determinism
//
//	core.Graph enumerates vertices in ascending order and out-arcs in
//	insertion order, so tours over the same graph built the same way are
//	identical across runs.
//
// Concurrency
//
//	A tour is a sequential cursor: construct, then call Valid/Arc/Next from
//	one goroutine. The underlying graph is never mutated, so any number of
//	tours may share it.
//
// Complexity
//
//	Construction O(V + E); a full drain performs O(E) cursor advances and
//	O(E) splices in total, however many steps are actually drawn. Peeking
//	via Arc is O(1).
//
// Errors
//
//	ErrNilGraph, ErrDirectedRequired, ErrUndirectedRequired,
//	ErrStartVertexNotFound, ErrOptionViolation. Traversal itself cannot
//	fail: a start with no outgoing arcs falls back to scanning for one, and
//	a graph with no arcs yields an empty tour.
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//	g.AddEdge("C", "A", 0)
//
//	tour, err := euler.NewDirectedTour(g)
//	if err != nil { ... }
//	for tour.Valid() {
//		step := tour.Next()
//		fmt.Println(step) // A→B, B→C, C→A
//	}
package euler
