// Package connectivity decides whether a core.Graph is connected and
// extracts its connected components, always ignoring arc orientation.
//
// What
//
//   - Connected(g): true iff every vertex is reachable from every other when
//     each arc may be crossed in either direction (weak connectivity). For
//     undirected graphs this is plain connectivity; for directed graphs it
//     equals connectivity of the direction-symmetrized view.
//   - Components(g): the weak components themselves, one slice of vertex IDs
//     per component.
//   - Empty and single-vertex graphs count as connected.
//
// Why
//
//   - The Eulerian predicate needs exactly this check: a graph admits a
//     closed tour only when its arcs/edges live in a single component.
//   - Isolated vertices form components of their own, which is what makes
//     them break Eulerianness.
//
// Determinism
//
//	Components are seeded in ascending vertex order (core.Vertices is
//	sorted) and filled in breadth-first discovery order over adjacency built
//	in edge insertion order, so repeated calls return identical output.
//
// Complexity
//
//	O(V + E) time and memory for either entry point.
//
// Errors
//
//	ErrNilGraph when g is nil. No other failure modes.
package connectivity
