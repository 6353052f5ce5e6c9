package gonumgraph

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/eulertour/core"
)

// FromDirectedMultigraph imports a gonum directed multigraph into a directed
// core.Graph with parallel arcs and self-loops enabled. The result is
// weighted iff any source line implements graph.WeightedLine; weights are
// rounded to the nearest integer.
//
// Arcs are emitted in ascending (from, to) order and, between one ordered
// pair, in ascending line ID order, so the edge IDs assigned by core are
// reproducible.
//
// Returns ErrNilSource for a nil src; propagates core insertion errors.
// Complexity: O(V·log V + E·log E).
func FromDirectedMultigraph(src graph.DirectedMultigraph) (*core.Graph, error) {
	// 1) Input validation
	if src == nil {
		return nil, ErrNilSource
	}

	// 2) Stage every line in deterministic order, sniffing for weights
	ids := drainIDs(src.Nodes())
	var (
		specs    []edgeSpec
		weighted bool
	)
	for _, uid := range ids {
		for _, vid := range drainIDs(src.From(uid)) {
			for _, ln := range drainLines(src.Lines(uid, vid)) {
				w, ok := lineWeight(ln)
				weighted = weighted || ok
				specs = append(specs, edgeSpec{from: vertexID(uid), to: vertexID(vid), w: w})
			}
		}
	}

	// 3) Build the target and replay the staged insertions
	g := newMultiTarget(true, weighted)
	if err := addVertices(g, ids); err != nil {
		return nil, err
	}
	for _, s := range specs {
		if _, err := g.AddEdge(s.from, s.to, s.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromUndirectedMultigraph imports a gonum undirected multigraph into an
// undirected core.Graph with parallel edges and self-loops enabled. Each
// unordered pair is visited once, oriented low ID → high ID; its lines are
// inserted in ascending line ID order. Weight handling matches
// FromDirectedMultigraph.
//
// Returns ErrNilSource for a nil src; propagates core insertion errors.
// Complexity: O(V·log V + E·log E).
func FromUndirectedMultigraph(src graph.UndirectedMultigraph) (*core.Graph, error) {
	// 1) Input validation
	if src == nil {
		return nil, ErrNilSource
	}

	// 2) Stage every line in deterministic order, sniffing for weights
	ids := drainIDs(src.Nodes())
	var (
		specs    []edgeSpec
		weighted bool
	)
	for _, uid := range ids {
		for _, vid := range drainIDs(src.From(uid)) {
			// each unordered pair once; vid == uid keeps self-loops
			if vid < uid {
				continue
			}
			for _, ln := range drainLines(src.LinesBetween(uid, vid)) {
				w, ok := lineWeight(ln)
				weighted = weighted || ok
				specs = append(specs, edgeSpec{from: vertexID(uid), to: vertexID(vid), w: w})
			}
		}
	}

	// 3) Build the target and replay the staged insertions
	g := newMultiTarget(false, weighted)
	if err := addVertices(g, ids); err != nil {
		return nil, err
	}
	for _, s := range specs {
		if _, err := g.AddEdge(s.from, s.to, s.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}
