package euler_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/eulertour/core"
	"github.com/katalvlaran/eulertour/euler"
)

// arc is shorthand for building expected tour steps.
func arc(id, from, to string) euler.Arc {
	return euler.Arc{EdgeID: id, From: from, To: to}
}

// TestNewDirectedTour_Errors verifies that invalid inputs and options are rejected.
func TestNewDirectedTour_Errors(t *testing.T) {
	// nil graph
	if _, err := euler.NewDirectedTour(nil); !errors.Is(err, euler.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	// undirected graph
	if _, err := euler.NewDirectedTour(core.NewGraph()); !errors.Is(err, euler.ErrDirectedRequired) {
		t.Errorf("undirected graph: want ErrDirectedRequired, got %v", err)
	}

	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0)
	// empty start ID is an option violation
	if _, err := euler.NewDirectedTour(g, euler.WithStart("")); !errors.Is(err, euler.ErrOptionViolation) {
		t.Errorf("empty start: want ErrOptionViolation, got %v", err)
	}
	// absent start vertex
	if _, err := euler.NewDirectedTour(g, euler.WithStart("Z")); !errors.Is(err, euler.ErrStartVertexNotFound) {
		t.Errorf("absent start: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestDirectedTrail_Cycle covers a plain 4-cycle: the default origin is the
// smallest vertex, and an explicit start rotates the same circuit.
func TestDirectedTrail_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("1", "2", 0) // e1
	g.AddEdge("2", "3", 0) // e2
	g.AddEdge("3", "4", 0) // e3
	g.AddEdge("4", "1", 0) // e4

	// default start: ascending scan picks "1"
	got, err := euler.DirectedTrail(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{arc("e1", "1", "2"), arc("e2", "2", "3"), arc("e3", "3", "4"), arc("e4", "4", "1")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("default start: got %v; want %v", got, want)
	}

	// explicit start rotates the circuit without changing its arc set
	got, err = euler.DirectedTrail(g, euler.WithStart("3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []euler.Arc{arc("e3", "3", "4"), arc("e4", "4", "1"), arc("e1", "1", "2"), arc("e2", "2", "3")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("start=3: got %v; want %v", got, want)
	}
}

// TestDirectedTour_StartFallback verifies that a start vertex without
// outgoing arcs silently falls back to the ascending scan.
func TestDirectedTour_StartFallback(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("A") // isolated: exists but has no out-arcs
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "B", 0)

	got, err := euler.DirectedTrail(g, euler.WithStart("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{arc("e1", "B", "C"), arc("e2", "C", "B")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback: got %v; want %v", got, want)
	}
}

// TestDirectedTour_LazySplice pins down the on-demand merge: a satellite
// circuit hanging off vertex 2 is invisible until the walk re-enters 2, then
// lands in the trail right where the traversal is passing.
func TestDirectedTour_LazySplice(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("1", "2", 0) // e1: main circuit
	g.AddEdge("2", "3", 0) // e2
	g.AddEdge("3", "1", 0) // e3
	g.AddEdge("2", "4", 0) // e4: satellite circuit through 2
	g.AddEdge("4", "5", 0) // e5
	g.AddEdge("5", "2", 0) // e6

	tour, err := euler.NewDirectedTour(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The initial walk saw only the main circuit.
	if got := tour.Arc(); got != arc("e1", "1", "2") {
		t.Fatalf("peek before splice: got %v; want e1", got)
	}

	// Drawing e1 lands the walk on 2 and splices the satellite in front.
	if got := tour.Next(); got != arc("e1", "1", "2") {
		t.Fatalf("first step: got %v; want e1", got)
	}
	if got := tour.Arc(); got != arc("e4", "2", "4") {
		t.Errorf("peek after splice: got %v; want e4", got)
	}

	// The drained remainder covers the satellite first, then resumes the
	// main circuit.
	var rest []euler.Arc
	for tour.Valid() {
		rest = append(rest, tour.Next())
	}
	want := []euler.Arc{
		arc("e4", "2", "4"), arc("e5", "4", "5"), arc("e6", "5", "2"),
		arc("e2", "2", "3"), arc("e3", "3", "1"),
	}
	if !reflect.DeepEqual(rest, want) {
		t.Errorf("remainder: got %v; want %v", rest, want)
	}
}

// TestDirectedTour_FigureEight walks two triangles sharing vertex 1, both
// from the hub (everything discovered up front) and from an interior vertex
// (second triangle discovered by splice).
func TestDirectedTour_FigureEight(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithDirected(true))
		g.AddEdge("1", "2", 0) // e1
		g.AddEdge("2", "3", 0) // e2
		g.AddEdge("3", "1", 0) // e3
		g.AddEdge("1", "4", 0) // e4
		g.AddEdge("4", "5", 0) // e5
		g.AddEdge("5", "1", 0) // e6
		return g
	}

	// From the hub the initial walk exhausts both triangles in turn.
	got, err := euler.DirectedTrail(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{
		arc("e1", "1", "2"), arc("e2", "2", "3"), arc("e3", "3", "1"),
		arc("e4", "1", "4"), arc("e5", "4", "5"), arc("e6", "5", "1"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hub start: got %v; want %v", got, want)
	}

	// From vertex 2 the second triangle is only found when the walk passes
	// through the hub, and the tour still closes at 2.
	got, err = euler.DirectedTrail(build(), euler.WithStart("2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []euler.Arc{
		arc("e2", "2", "3"), arc("e3", "3", "1"),
		arc("e4", "1", "4"), arc("e5", "4", "5"), arc("e6", "5", "1"),
		arc("e1", "1", "2"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interior start: got %v; want %v", got, want)
	}
}

// TestDirectedTour_Multigraph exercises loops and parallel arcs: each arc is
// a distinct tour step, and the tour closes with all six consumed.
func TestDirectedTour_Multigraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	g.AddEdge("A", "A", 0) // e1: loop
	g.AddEdge("A", "B", 0) // e2
	g.AddEdge("A", "B", 0) // e3: parallel to e2
	g.AddEdge("B", "A", 0) // e4
	g.AddEdge("B", "A", 0) // e5: parallel to e4
	g.AddEdge("B", "B", 0) // e6: loop

	got, err := euler.DirectedTrail(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{
		arc("e1", "A", "A"), arc("e2", "A", "B"), arc("e6", "B", "B"),
		arc("e4", "B", "A"), arc("e3", "A", "B"), arc("e5", "B", "A"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("multigraph: got %v; want %v", got, want)
	}
	if got[0].From != got[len(got)-1].To {
		t.Errorf("tour not closed: starts at %s, ends at %s", got[0].From, got[len(got)-1].To)
	}
}

// TestDirectedTrail_OpenChain covers a non-Eulerian graph: the walk is the
// maximal trail from the origin, not a closed tour.
func TestDirectedTrail_OpenChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0) // e1
	g.AddEdge("B", "C", 0) // e2

	got, err := euler.DirectedTrail(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{arc("e1", "A", "B"), arc("e2", "B", "C")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chain: got %v; want %v", got, want)
	}
	if got[len(got)-1].To == got[0].From {
		t.Error("open chain unexpectedly closed")
	}
}

// TestDirectedTour_Exhausted covers graphs without a single arc: the tour is
// born empty and every accessor reports exhaustion.
func TestDirectedTour_Exhausted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("A")
	g.AddVertex("B")

	tour, err := euler.NewDirectedTour(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tour.Valid() {
		t.Error("Valid() = true on an arcless graph")
	}
	if got := tour.Arc(); got.Valid() {
		t.Errorf("Arc() = %v; want ArcInvalid", got)
	}
	if got := tour.Next(); got != euler.ArcInvalid {
		t.Errorf("Next() = %v; want ArcInvalid", got)
	}

	trail, err := euler.DirectedTrail(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trail) != 0 {
		t.Errorf("trail = %v; want empty", trail)
	}

	// A start preference changes nothing when no vertex has an out-arc.
	trail, err = euler.DirectedTrail(g, euler.WithStart("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trail) != 0 {
		t.Errorf("trail with start = %v; want empty", trail)
	}
}

// TestDirectedTour_WeightsIgnored verifies that edge weights play no part in
// tour construction: the weighted ring walks exactly like the plain one.
func TestDirectedTour_WeightsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("1", "2", 90) // e1
	g.AddEdge("2", "3", 1)  // e2
	g.AddEdge("3", "4", 55) // e3
	g.AddEdge("4", "1", 7)  // e4

	got, err := euler.DirectedTrail(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []euler.Arc{arc("e1", "1", "2"), arc("e2", "2", "3"), arc("e3", "3", "4"), arc("e4", "4", "1")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weighted ring: got %v; want %v", got, want)
	}
}

// TestDirectedTour_PeekIdempotent verifies that Arc never advances the tour.
func TestDirectedTour_PeekIdempotent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("X", "Y", 0) // e1
	g.AddEdge("Y", "X", 0) // e2

	tour, err := euler.NewDirectedTour(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := tour.Arc()
	for i := 0; i < 3; i++ {
		if got := tour.Arc(); got != first {
			t.Fatalf("peek #%d = %v; want %v", i, got, first)
		}
	}
	if got := tour.Next(); got != first {
		t.Errorf("Next() = %v; want peeked %v", got, first)
	}
	if got := tour.Arc(); got == first {
		t.Error("peek unchanged after Next")
	}
}

// TestDirectedTour_Seq checks the range-over-func view: a full drain matches
// DirectedTrail, and breaking mid-range leaves the tour resumable.
func TestDirectedTour_Seq(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithDirected(true))
		g.AddEdge("1", "2", 0)
		g.AddEdge("2", "3", 0)
		g.AddEdge("3", "4", 0)
		g.AddEdge("4", "1", 0)
		return g
	}

	want, err := euler.DirectedTrail(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// full drain through Seq
	tour, err := euler.NewDirectedTour(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []euler.Arc
	for a := range tour.Seq() {
		got = append(got, a)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Seq drain: got %v; want %v", got, want)
	}
	if tour.Valid() {
		t.Error("tour still valid after full Seq drain")
	}

	// breaking after two steps leaves the remainder intact
	tour, err = euler.NewDirectedTour(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var head []euler.Arc
	for a := range tour.Seq() {
		head = append(head, a)
		if len(head) == 2 {
			break
		}
	}
	if !tour.Valid() {
		t.Fatal("tour exhausted by a partial Seq drain")
	}
	var tail []euler.Arc
	for tour.Valid() {
		tail = append(tail, tour.Next())
	}
	if combined := append(head, tail...); !reflect.DeepEqual(combined, want) {
		t.Errorf("break/resume: got %v; want %v", combined, want)
	}
}
