package builder_test

import (
	"fmt"

	"github.com/katalvlaran/eulertour/builder"
	"github.com/katalvlaran/eulertour/core"
	"github.com/katalvlaran/eulertour/euler"
)

// ExampleBuildGraph constructs the directed figure-eight rose and walks its
// closed Euler tour arc by arc.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Rose(2, 3),
	)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	arcs, err := euler.DirectedTrail(g)
	if err != nil {
		fmt.Println("tour:", err)
		return
	}
	for _, a := range arcs {
		fmt.Println(a)
	}
	// Output:
	// 0→1
	// 1→2
	// 2→0
	// 0→3
	// 3→4
	// 4→0
}

// ExampleBuildGraph_idScheme relabels a cycle with letter IDs.
func ExampleBuildGraph_idScheme() {
	letters := func(i int) string { return string(rune('A' + i)) }
	g, err := builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithIDScheme(letters)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println(g.Vertices())
	// Output:
	// [A B C D]
}
