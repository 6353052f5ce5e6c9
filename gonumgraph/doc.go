// Package gonumgraph imports graphs built with gonum.org/v1/gonum/graph
// into core.Graph form, so topologies assembled or generated with gonum can
// be walked by the euler package.
//
// What you get:
//
//   - FromDirected / FromUndirected — simple gonum graphs;
//   - FromDirectedMultigraph / FromUndirectedMultigraph — gonum multigraphs,
//     with parallel lines and self-loops preserved.
//
// Determinism:
//
//   - Vertex IDs are the decimal renderings of gonum node IDs, inserted in
//     ascending ID order.
//   - Edges are emitted in ascending (from, to) order — and, between one
//     pair, in ascending line ID order — so the edge IDs core assigns, and
//     therefore tour sequences over the result, are reproducible.
//
// Weights transfer when the source implements graph.Weighted (simple
// graphs) or its lines implement graph.WeightedLine (multigraphs); values
// are rounded to the nearest integer. Conversion is one-way: core graphs
// carry string vertex IDs and insertion-ordered adjacency with no canonical
// gonum image.
//
// Errors: ErrNilSource for a nil source; core insertion errors propagate
// unchanged.
package gonumgraph
