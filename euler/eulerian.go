package euler

import (
	"github.com/katalvlaran/eulertour/connectivity"
	"github.com/katalvlaran/eulertour/core"
)

// Eulerian reports whether g admits a full closed Euler tour. The check is
// polymorphic over orientation:
//
//   - directed: every vertex has in-degree == out-degree, and the graph is
//     connected with arc direction ignored;
//   - undirected: every vertex has even degree (a self-loop counts twice),
//     and the graph is connected.
//
// A graph with zero vertices, or a single vertex and no arcs, is vacuously
// Eulerian. More than one weak component — isolated vertices included —
// makes the answer false regardless of degree balance. The predicate never
// mutates g; its only error is ErrNilGraph.
//
// Complexity: O(V + E).
func Eulerian(g *core.Graph) (bool, error) {
	// 1) Input validation
	if g == nil {
		return false, ErrNilGraph
	}

	// 2) Local balance at every vertex
	if g.Directed() {
		for _, id := range g.Vertices() {
			in, err := g.InDegree(id)
			if err != nil {
				return false, err
			}
			out, err := g.OutDegree(id)
			if err != nil {
				return false, err
			}
			if in != out {
				return false, nil
			}
		}
	} else {
		for _, id := range g.Vertices() {
			deg, err := g.Degree(id)
			if err != nil {
				return false, err
			}
			if deg%2 != 0 {
				return false, nil
			}
		}
	}

	// 3) Global reach: everything in a single weak component
	return connectivity.Connected(g)
}
