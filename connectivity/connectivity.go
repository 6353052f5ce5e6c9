package connectivity

import (
	"errors"

	"github.com/katalvlaran/eulertour/core"
)

// ErrNilGraph is returned when a nil graph is supplied.
var ErrNilGraph = errors.New("connectivity: graph is nil")

// Connected reports whether g is connected with arc orientation ignored
// (weak connectivity). Graphs with zero or one vertex are connected.
//
// Complexity: O(V + E).
func Connected(g *core.Graph) (bool, error) {
	// 1) Input validation
	if g == nil {
		return false, ErrNilGraph
	}

	// 2) Trivial sizes are connected by definition
	verts := g.Vertices()
	if len(verts) <= 1 {
		return true, nil
	}

	// 3) Breadth-first sweep from the first vertex over symmetrized adjacency
	adj := symmetricAdjacency(g)
	seen := make(map[string]bool, len(verts))
	queue := []string{verts[0]}
	seen[verts[0]] = true
	reached := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		reached++
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	// 4) Connected iff the sweep reached every vertex
	return reached == len(verts), nil
}

// Components returns the weak components of g. Each component lists vertex
// IDs in breadth-first discovery order; components are ordered by their
// seed, taken from the ascending vertex enumeration. An empty graph yields
// no components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	// 1) Input validation
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Sweep every unseen vertex in ascending order
	adj := symmetricAdjacency(g)
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, seed := range g.Vertices() {
		if seen[seed] {
			continue
		}
		queue := []string{seed}
		seen[seed] = true
		var comp []string
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// symmetricAdjacency builds neighbor lists from every edge crossed in both
// directions, in edge insertion order. Self-loops contribute a single
// self-entry, which the seen guard ignores.
func symmetricAdjacency(g *core.Graph) map[string][]string {
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}
