package euler_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/eulertour/core"
	"github.com/katalvlaran/eulertour/euler"
)

// TestEulerian_Directed tables the predicate over directed graphs: local
// in/out balance at every vertex plus a single weak component.
func TestEulerian_Directed(t *testing.T) {
	tests := []struct {
		name  string
		build func() *core.Graph
		want  bool
	}{
		{
			name:  "empty graph",
			build: func() *core.Graph { return core.NewGraph(core.WithDirected(true)) },
			want:  true,
		},
		{
			name: "single vertex, no arcs",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddVertex("A")
				return g
			},
			want: true,
		},
		{
			name: "single loop",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true), core.WithLoops())
				g.AddEdge("A", "A", 0)
				return g
			},
			want: true,
		},
		{
			name: "4-cycle",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "4", 0)
				g.AddEdge("4", "1", 0)
				return g
			},
			want: true,
		},
		{
			name: "open chain: unbalanced endpoints",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddEdge("A", "B", 0)
				g.AddEdge("B", "C", 0)
				return g
			},
			want: false,
		},
		{
			name: "figure eight through one hub",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "1", 0)
				g.AddEdge("1", "4", 0)
				g.AddEdge("4", "5", 0)
				g.AddEdge("5", "1", 0)
				return g
			},
			want: true,
		},
		{
			name: "two disjoint cycles: balanced but disconnected",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "1", 0)
				g.AddEdge("3", "4", 0)
				g.AddEdge("4", "3", 0)
				return g
			},
			want: false,
		},
		{
			name: "cycle plus isolated vertex",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true))
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "1", 0)
				g.AddVertex("Z")
				return g
			},
			want: false,
		},
		{
			name: "balanced parallel arcs",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
				g.AddEdge("A", "B", 0)
				g.AddEdge("A", "B", 0)
				g.AddEdge("B", "A", 0)
				g.AddEdge("B", "A", 0)
				return g
			},
			want: true,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := euler.Eulerian(tc.build())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Eulerian = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestEulerian_Undirected tables the predicate over undirected graphs: even
// degree at every vertex plus a single component.
func TestEulerian_Undirected(t *testing.T) {
	complete := func(ids ...string) *core.Graph {
		g := core.NewGraph()
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				g.AddEdge(ids[i], ids[j], 0)
			}
		}
		return g
	}

	tests := []struct {
		name  string
		build func() *core.Graph
		want  bool
	}{
		{
			name:  "empty graph",
			build: func() *core.Graph { return core.NewGraph() },
			want:  true,
		},
		{
			name: "single vertex, no edges",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddVertex("A")
				return g
			},
			want: true,
		},
		{
			name: "single loop counts twice",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithLoops())
				g.AddEdge("A", "A", 0)
				return g
			},
			want: true,
		},
		{
			name: "4-cycle",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "4", 0)
				g.AddEdge("4", "1", 0)
				return g
			},
			want: true,
		},
		{
			name: "open path: odd endpoints",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				return g
			},
			want: false,
		},
		{
			name:  "K5: all degrees even",
			build: func() *core.Graph { return complete("A", "B", "C", "D", "E") },
			want:  true,
		},
		{
			name:  "K4: all degrees odd",
			build: func() *core.Graph { return complete("A", "B", "C", "D") },
			want:  false,
		},
		{
			name: "star: odd leaves",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("hub", "a", 0)
				g.AddEdge("hub", "b", 0)
				g.AddEdge("hub", "c", 0)
				return g
			},
			want: false,
		},
		{
			name: "parallel pair",
			build: func() *core.Graph {
				g := core.NewGraph(core.WithMultiEdges())
				g.AddEdge("A", "B", 0)
				g.AddEdge("A", "B", 0)
				return g
			},
			want: true,
		},
		{
			name: "triangle plus isolated vertex",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "1", 0)
				g.AddVertex("Z")
				return g
			},
			want: false,
		},
		{
			name: "two disjoint triangles",
			build: func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("1", "2", 0)
				g.AddEdge("2", "3", 0)
				g.AddEdge("3", "1", 0)
				g.AddEdge("4", "5", 0)
				g.AddEdge("5", "6", 0)
				g.AddEdge("6", "4", 0)
				return g
			},
			want: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := euler.Eulerian(tc.build())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Eulerian = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestEulerian_NilGraph verifies the only error the predicate can return.
func TestEulerian_NilGraph(t *testing.T) {
	if _, err := euler.Eulerian(nil); !errors.Is(err, euler.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
}

// TestEulerian_InsertionOrderInvariance checks that the verdict depends only
// on the graph, not on the order edges were inserted.
func TestEulerian_InsertionOrderInvariance(t *testing.T) {
	a := core.NewGraph()
	a.AddEdge("1", "2", 0)
	a.AddEdge("2", "3", 0)
	a.AddEdge("3", "4", 0)
	a.AddEdge("4", "1", 0)

	b := core.NewGraph()
	b.AddEdge("3", "4", 0)
	b.AddEdge("4", "1", 0)
	b.AddEdge("1", "2", 0)
	b.AddEdge("2", "3", 0)

	gotA, errA := euler.Eulerian(a)
	gotB, errB := euler.Eulerian(b)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v / %v", errA, errB)
	}
	if !gotA || gotA != gotB {
		t.Errorf("verdicts differ across insertion orders: %v vs %v", gotA, gotB)
	}
}
