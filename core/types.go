package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph operations.
var (
	// ErrEmptyVertexID is returned when a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID must be non-empty")

	// ErrVertexNotFound is returned when an operation references a vertex
	// that does not exist in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound is returned when an operation references an edge ID
	// that does not exist in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight is returned when a non-zero weight is supplied to an
	// unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed is returned when a self-loop is added without
	// WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loops not allowed")

	// ErrMultiEdgeNotAllowed is returned when a parallel edge is added
	// without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// In a directed graph the edge is the arc From→To. In an undirected graph
// From and To record insertion order only; the edge may be traversed in
// either orientation. ID is unique within the graph (“e1”, “e2”, …).
//
// Edges returned by Graph accessors are shared with the graph's internal
// state and must be treated as read-only.
type Edge struct {
	// ID uniquely identifies the edge within its graph.
	ID string

	// From is the source vertex as the edge was added.
	From string

	// To is the destination vertex as the edge was added.
	To string

	// Weight is the edge weight; always 0 unless the graph is weighted.
	Weight int64
}

// degreeCount tracks per-vertex incidence tallies, maintained by AddEdge.
// An undirected self-loop contributes 2 to undirected; a directed self-loop
// contributes 1 to in and 1 to out.
type degreeCount struct {
	in         int
	out        int
	undirected int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the orientation of the whole graph. The default is
// undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted permits non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges with From == To).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a mutable in-memory graph with string vertex IDs.
//
// Concurrency: muVert guards the vertex set; muEdgeAdj guards edges,
// adjacency, and degree counters. All exported methods are safe for
// concurrent use; configuration flags are fixed at construction and read
// without locking.
type Graph struct {
	// muVert guards vertices.
	muVert sync.RWMutex
	// muEdgeAdj guards edges, edgeList, out, and degrees.
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// nextEdgeID feeds atomic edge ID generation.
	nextEdgeID uint64

	// vertices is the vertex set.
	vertices map[string]struct{}

	// edges maps edge ID to the edge.
	edges map[string]*Edge

	// edgeList holds every edge in insertion order.
	edgeList []*Edge

	// out maps vertex ID to its out-arc list in insertion order. For
	// undirected graphs each edge appears in both endpoints' lists; a
	// self-loop appears once.
	out map[string][]*Edge

	// degrees maps vertex ID to its incidence tallies.
	degrees map[string]*degreeCount
}

// NewGraph constructs an empty Graph configured by opts.
// Defaults: undirected, unweighted, no multi-edges, no loops.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
		degrees:  make(map[string]*degreeCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
