// Package shortest_test contains unit tests for the Dijkstra implementation.
// These tests validate input validation order, path correctness on small
// fixtures, MaxDistance and InfEdgeThreshold behavior, edge cases, and
// agreement with a Bellman-Ford oracle on randomized graphs.
package shortest_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pqheap/shortest"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: errors surface in the documented order.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	// When no Source is provided, Dijkstra should return ErrEmptySource.
	g := shortest.NewGraph()
	_, _, err := shortest.Dijkstra(g)
	if !errors.Is(err, shortest.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// If graph is nil and no Source is provided, ErrEmptySource has priority.
	_, _, err := shortest.Dijkstra(nil)
	if !errors.Is(err, shortest.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource when graph is nil and Source is empty, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := shortest.Dijkstra(nil, shortest.Source("X"))
	if !errors.Is(err, shortest.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := shortest.NewGraph()
	g.AddVertex("A")
	_, _, err := shortest.Dijkstra(g, shortest.Source("X"))
	if !errors.Is(err, shortest.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := shortest.NewGraph()
	g.AddEdge("A", "B", -5) // invalid negative weight, caught by the pre-scan
	_, _, err := shortest.Dijkstra(g, shortest.Source("A"))
	if !errors.Is(err, shortest.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestOptions_InvalidValuesPanic(t *testing.T) {
	g := shortest.NewGraph()
	g.AddVertex("A")
	// The invalid values are rejected when the option is applied, i.e. as
	// soon as Dijkstra builds its configuration.
	assertPanics(t, func() {
		_, _, _ = shortest.Dijkstra(g, shortest.Source("A"), shortest.WithMaxDistance(-1))
	})
	assertPanics(t, func() {
		_, _, _ = shortest.Dijkstra(g, shortest.Source("A"), shortest.WithInfEdgeThreshold(0))
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: small graphs, with and without ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	// Triangle: A—B(1), B—C(2), A—C(5), all bidirectional.
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 1)
	g.AddBiEdge("B", "C", 2)
	g.AddBiEdge("A", "C", 5)

	dist, prev, err := shortest.Dijkstra(g, shortest.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from A to C should be 3 via A→B→C.
	if got, want := dist["C"], int64(3); got != want {
		t.Errorf("dist[C] = %d; want %d", got, want)
	}
	// prev should be nil when ReturnPath is not requested.
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 1)
	g.AddBiEdge("B", "C", 2)
	g.AddBiEdge("A", "C", 5)

	dist, prev, err := shortest.Dijkstra(g, shortest.Source("A"), shortest.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}

	// Predecessor chain: B←A, C←B.
	if prev["B"] != "A" {
		t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
}

func TestDijkstra_DirectedGraph(t *testing.T) {
	// Directed: A→B(2), A→C(1), C→B(1), B→D(3), C→D(5).
	g := shortest.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	dist, _, err := shortest.Dijkstra(g, shortest.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Expected: dist[C]=1, dist[B]=2 (via A→C→B), dist[D]=5 (via A→C→B→D).
	if dist["C"] != 1 {
		t.Errorf("dist[C] = %d; want 1", dist["C"])
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %d; want 2", dist["B"])
	}
	if dist["D"] != 5 {
		t.Errorf("dist[D] = %d; want 5", dist["D"])
	}
	// No edge leads back into A, so A keeps distance 0.
	if dist["A"] != 0 {
		t.Errorf("dist[A] = %d; want 0", dist["A"])
	}
}

// ------------------------------------------------------------------------
// 3. MaxDistance: vertices beyond the cap stay unexplored.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A—B(1)—C(1)—D(1).
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 1)
	g.AddBiEdge("B", "C", 1)
	g.AddBiEdge("C", "D", 1)

	dist, _, err := shortest.Dijkstra(g,
		shortest.Source("A"),
		shortest.WithMaxDistance(1),
	)
	if err != nil {
		t.Fatal(err)
	}

	// dist[A]=0, dist[B]=1, C and D stay unreachable.
	if dist["A"] != 0 || dist["B"] != 1 {
		t.Errorf("Unexpected near distances: %v", dist)
	}
	if dist["C"] != shortest.Unreachable {
		t.Errorf("dist[C] = %d; want Unreachable", dist["C"])
	}
	if dist["D"] != shortest.Unreachable {
		t.Errorf("dist[D] = %d; want Unreachable", dist["D"])
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 1)

	dist, _, err := shortest.Dijkstra(g,
		shortest.Source("A"),
		shortest.WithMaxDistance(0),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Only the source itself is processed.
	if dist["A"] != 0 {
		t.Errorf("dist[A] = %d; want 0", dist["A"])
	}
	if dist["B"] != shortest.Unreachable {
		t.Errorf("dist[B] = %d; want Unreachable", dist["B"])
	}
}

// ------------------------------------------------------------------------
// 4. InfEdgeThreshold: “impassable” edges are skipped.
// ------------------------------------------------------------------------

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// A—B(2), B—C(4), A—C(10); threshold 5 closes the direct A—C road.
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 2)
	g.AddBiEdge("B", "C", 4)
	g.AddBiEdge("A", "C", 10)

	dist, _, err := shortest.Dijkstra(g,
		shortest.Source("A"),
		shortest.WithInfEdgeThreshold(5),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Shortest path from A to C is now A→B→C with total cost 6.
	if dist["C"] != 6 {
		t.Errorf("dist[C] = %d; want 6", dist["C"])
	}
}

func TestDijkstra_InfThresholdIsolatesVertex(t *testing.T) {
	// B is only reachable over a closed road: it must end up unreachable.
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 9)
	g.AddBiEdge("A", "C", 1)

	dist, _, err := shortest.Dijkstra(g,
		shortest.Source("A"),
		shortest.WithInfEdgeThreshold(5),
	)
	if err != nil {
		t.Fatal(err)
	}

	if dist["B"] != shortest.Unreachable {
		t.Errorf("dist[B] = %d; want Unreachable", dist["B"])
	}
	if dist["C"] != 1 {
		t.Errorf("dist[C] = %d; want 1", dist["C"])
	}
}

// ------------------------------------------------------------------------
// 5. Edge Cases: single vertex, disconnected component.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := shortest.NewGraph()
	g.AddVertex("Solo")

	dist, prev, err := shortest.Dijkstra(g, shortest.Source("Solo"), shortest.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if d := dist["Solo"]; d != 0 {
		t.Errorf("dist[Solo] = %d; want 0", d)
	}
	if p := prev["Solo"]; p != "" {
		t.Errorf("prev[Solo] = %q; want empty string", p)
	}
}

func TestDijkstra_DisconnectedComponent(t *testing.T) {
	g := shortest.NewGraph()
	g.AddBiEdge("A", "B", 1)
	g.AddBiEdge("X", "Y", 1) // an island the source never reaches

	dist, prev, err := shortest.Dijkstra(g, shortest.Source("A"), shortest.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []string{"X", "Y"} {
		if dist[v] != shortest.Unreachable {
			t.Errorf("dist[%s] = %d; want Unreachable", v, dist[v])
		}
		if prev[v] != "" {
			t.Errorf("prev[%s] = %q; want empty string", v, prev[v])
		}
	}
}

// ------------------------------------------------------------------------
// 6. Oracle Test: agreement with Bellman-Ford on randomized graphs.
// ------------------------------------------------------------------------

func TestDijkstra_RandomAgainstBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for trial := 0; trial < 20; trial++ {
		// Random directed graph: 30 vertices, ~120 edges, weights in [0, 50].
		g := shortest.NewGraph()
		const n = 30
		for i := 0; i < n; i++ {
			g.AddVertex(vtx(i))
		}
		edges := make(map[[2]int]int64)
		for k := 0; k < 120; k++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			w := int64(r.Intn(51))
			g.AddEdge(vtx(u), vtx(v), w)
			edges[[2]int{u, v}] = w // mirror for the oracle (AddEdge overwrites)
		}

		dist, _, err := shortest.Dijkstra(g, shortest.Source(vtx(0)))
		if err != nil {
			t.Fatal(err)
		}

		want := bellmanFord(n, edges, 0)
		for i := 0; i < n; i++ {
			if dist[vtx(i)] != want[i] {
				t.Fatalf("trial %d: dist[%s] = %d; oracle says %d", trial, vtx(i), dist[vtx(i)], want[i])
			}
		}
	}
}

// vtx formats a vertex ID from an index.
func vtx(i int) string { return fmt.Sprintf("V%d", i) }

// bellmanFord is the O(V·E) oracle: |V|-1 rounds of full edge relaxation.
func bellmanFord(n int, edges map[[2]int]int64, src int) []int64 {
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = shortest.Unreachable
	}
	dist[src] = 0
	for round := 0; round < n-1; round++ {
		changed := false
		for e, w := range edges {
			if dist[e[0]] == shortest.Unreachable {
				continue
			}
			if nd := dist[e[0]] + w; nd < dist[e[1]] {
				dist[e[1]] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// assertPanics fails the test unless fn panics.
func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
}
