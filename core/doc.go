// Package core provides a thread-safe in-memory Graph used as the substrate
// for Euler-tour construction and the Eulerian predicate.
//
// The Graph G = (V,E) supports the behaviors tour traversal cares about:
//
//   - Directed vs. undirected orientation, fixed per graph (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Insertion-ordered out-arc lists per vertex:
//     OutEdges(v) returns arcs in the order they were added, so an integer
//     position into that list is a stable traversal cursor
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Constant-time degree counters (Degree, InDegree, OutDegree),
//     maintained on every AddEdge
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrent reads
//
// Why this shape?
//
//   - Deterministic iteration — Vertices() is sorted, Edges() and OutEdges()
//     follow insertion order, so every traversal over the same graph walks
//     arcs in the same order.
//   - Read-only sharing — tours never mutate the graph; one Graph may feed
//     any number of independently constructed tours.
//   - Undirected mirroring — each undirected edge appears in both endpoints'
//     out-arc lists (a self-loop appears once), so out-arc enumeration is
//     the only adjacency primitive a walk needs.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation of the whole graph.
//	    • Directed graphs store only “from→to” arcs.
//	    • Undirected graphs mirror each edge into both endpoints' lists.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//
//	– WithLoops()
//	    Allows self-loops (from == to).
//
// Degree conventions: an undirected self-loop contributes 2 to its vertex's
// degree; a directed self-loop contributes 1 to in-degree and 1 to
// out-degree. Parity and balance checks depend on these conventions.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
