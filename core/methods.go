package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// edgeIDPrefix prefixes every generated Edge.ID.
const edgeIDPrefix = "e"

// AddVertex ensures a vertex with the given ID exists.
// Idempotent: adding an existing ID is a no-op.
//
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	// 1) Input validation
	if id == "" {
		return ErrEmptyVertexID
	}

	// 2) Fast path: vertex already present
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}

	// 3) Register the vertex
	g.vertices[id] = struct{}{}

	// 4) Initialize adjacency and degree slots under the edge lock
	g.muEdgeAdj.Lock()
	g.out[id] = nil
	g.degrees[id] = &degreeCount{}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the given vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from → to with the given weight and returns its
// generated ID. Both endpoints are created if absent. For undirected graphs
// the edge is mirrored into both endpoints' out-arc lists (a self-loop is
// listed once); degree counters are updated per the package conventions.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) for multigraphs, O(deg(from)) otherwise (parallel-edge
// scan).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Parallel-edge check
	if !g.allowMulti && g.parallelLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 7) Construct the edge with a fresh atomic ID
	e := &Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1)),
		From:   from,
		To:     to,
		Weight: weight,
	}

	// 8) Store in the global map and the insertion-order list
	g.edges[e.ID] = e
	g.edgeList = append(g.edgeList, e)

	// 9) Append to out-arc lists; undirected edges mirror (loops skip the mirror)
	g.out[from] = append(g.out[from], e)
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], e)
	}

	// 10) Maintain degree counters
	if g.directed {
		g.degrees[from].out++
		g.degrees[to].in++
	} else {
		g.degrees[from].undirected++
		g.degrees[to].undirected++
	}

	return e.ID, nil
}

// parallelLocked reports whether an edge between from and to already exists.
// For undirected graphs the pair is unordered. Caller holds muEdgeAdj.
func (g *Graph) parallelLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
			return true
		}
	}

	return false
}

// HasEdge reports whether an edge from → to exists. For directed graphs the
// check is directional; for undirected graphs order does not matter.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.out[from] {
		if g.directed {
			if e.To == to {
				return true
			}
			continue
		}
		if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
			return true
		}
	}

	return false
}

// Edge returns the edge with the given ID.
// The returned edge is shared with the graph; treat it as read-only.
//
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// OutEdges returns the out-arc list of the given vertex in insertion order.
// For undirected graphs the list contains every incident edge (mirrored
// entries included; a self-loop appears once). The returned slice is a copy;
// the edges it holds are shared and must be treated as read-only.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.degrees[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]*Edge(nil), g.out[id]...), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order. The returned slice is a copy;
// the edges it holds are shared and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return append([]*Edge(nil), g.edgeList...)
}

// Degree returns the total incidence count of the given vertex: in+out for
// directed graphs, the incident-edge count for undirected graphs (self-loops
// count twice).
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	dc, ok := g.degrees[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return dc.in + dc.out, nil
	}

	return dc.undirected, nil
}

// InDegree returns the number of arcs ending at the given vertex. For
// undirected graphs every incidence counts, so InDegree equals Degree.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) InDegree(id string) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	dc, ok := g.degrees[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return dc.in, nil
	}

	return dc.undirected, nil
}

// OutDegree returns the number of arcs starting at the given vertex. For
// undirected graphs every incidence counts, so OutDegree equals Degree.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	dc, ok := g.degrees[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return dc.out, nil
	}

	return dc.undirected, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeList)
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Looped reports whether the graph accepts self-loops.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether the graph accepts parallel edges.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}
