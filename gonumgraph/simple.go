package gonumgraph

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/eulertour/core"
)

// FromDirected imports a gonum directed graph into a directed core.Graph.
// The result is weighted iff src implements graph.Weighted (as
// simple.WeightedDirectedGraph does); weights are rounded to the nearest
// integer. gonum simple graphs cannot hold self-edges; a custom src that
// reports one makes the insertion fail, so route such sources through
// FromDirectedMultigraph instead.
//
// Vertices are inserted in ascending node ID order and arcs in ascending
// (from, to) order, so the edge IDs assigned by core are reproducible.
//
// Returns ErrNilSource for a nil src; propagates core insertion errors.
// Complexity: O(V·log V + E·log E).
func FromDirected(src graph.Directed) (*core.Graph, error) {
	// 1) Input validation
	if src == nil {
		return nil, ErrNilSource
	}

	// 2) Target mode: directed, weighted only when the source carries weights
	opts := []core.GraphOption{core.WithDirected(true)}
	weighter, weighted := src.(graph.Weighted)
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	// 3) Vertices in ascending ID order
	ids := drainIDs(src.Nodes())
	if err := addVertices(g, ids); err != nil {
		return nil, err
	}

	// 4) Arcs in ascending (from, to) order
	for _, uid := range ids {
		for _, vid := range drainIDs(src.From(uid)) {
			var w int64
			if weighted {
				if ww, ok := weighter.Weight(uid, vid); ok {
					w = roundWeight(ww)
				}
			}
			if _, err := g.AddEdge(vertexID(uid), vertexID(vid), w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// FromUndirected imports a gonum undirected graph into an undirected
// core.Graph. Each unordered pair is inserted once, oriented low ID → high
// ID. Weight and self-edge handling match FromDirected.
//
// Returns ErrNilSource for a nil src; propagates core insertion errors.
// Complexity: O(V·log V + E·log E).
func FromUndirected(src graph.Undirected) (*core.Graph, error) {
	// 1) Input validation
	if src == nil {
		return nil, ErrNilSource
	}

	// 2) Target mode
	var opts []core.GraphOption
	weighter, weighted := src.(graph.Weighted)
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	// 3) Vertices in ascending ID order
	ids := drainIDs(src.Nodes())
	if err := addVertices(g, ids); err != nil {
		return nil, err
	}

	// 4) Each unordered pair once, low ID first
	for _, uid := range ids {
		for _, vid := range drainIDs(src.From(uid)) {
			if vid < uid {
				continue
			}
			var w int64
			if weighted {
				if ww, ok := weighter.Weight(uid, vid); ok {
					w = roundWeight(ww)
				}
			}
			if _, err := g.AddEdge(vertexID(uid), vertexID(vid), w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
