package gonumgraph

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/eulertour/core"
)

// ErrNilSource is returned when a converter receives a nil gonum graph.
var ErrNilSource = errors.New("gonumgraph: source graph is nil")

// vertexID renders a gonum node ID as a core vertex ID.
func vertexID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// drainIDs empties a node iterator into an ascending slice of IDs.
func drainIDs(it graph.Nodes) []int64 {
	if it == nil {
		return nil
	}
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// drainLines empties a line iterator into a slice ordered by line ID.
func drainLines(it graph.Lines) []graph.Line {
	if it == nil {
		return nil
	}
	var lines []graph.Line
	for it.Next() {
		lines = append(lines, it.Line())
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID() < lines[j].ID() })

	return lines
}

// roundWeight maps a gonum float weight onto core's integer weights.
func roundWeight(w float64) int64 {
	return int64(math.Round(w))
}

// lineWeight extracts a line's weight; ok reports whether the line carries one.
func lineWeight(ln graph.Line) (w int64, ok bool) {
	if wl, isWeighted := ln.(graph.WeightedLine); isWeighted {
		return roundWeight(wl.Weight()), true
	}

	return 0, false
}

// addVertices inserts every node ID as a vertex, preserving isolated nodes.
func addVertices(g *core.Graph, ids []int64) error {
	for _, id := range ids {
		if err := g.AddVertex(vertexID(id)); err != nil {
			return err
		}
	}

	return nil
}

// edgeSpec stages one insertion: multigraph converters walk all lines before
// creating the target so its weighted mode can reflect what the lines carry.
type edgeSpec struct {
	from, to string
	w        int64
}

// newMultiTarget creates a core graph in multigraph mode.
func newMultiTarget(directed, weighted bool) *core.Graph {
	opts := []core.GraphOption{core.WithMultiEdges(), core.WithLoops()}
	if directed {
		opts = append(opts, core.WithDirected(true))
	}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}

	return core.NewGraph(opts...)
}
