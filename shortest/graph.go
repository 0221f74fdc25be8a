package shortest

import "sort"

// Graph is a minimal directed, weighted graph over string vertex IDs, backed
// by an adjacency map. It exists to feed Dijkstra; it is not a general graph
// container (no edge removal, no undirected mode, no metadata).
//
// Adding an undirected road means adding both directed arcs explicitly.
type Graph struct {
	adj map[string]map[string]int64 // from → to → weight
}

// NewGraph constructs an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}

// AddVertex ensures a vertex exists, with no incident edges required.
// Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// AddEdge records the directed edge from→to with the given weight, creating
// both endpoints as needed. A repeated AddEdge overwrites the weight.
// Negative weights are accepted here and rejected by Dijkstra's pre-scan,
// so construction never fails.
func (g *Graph) AddEdge(from, to string, weight int64) {
	g.AddVertex(from)
	g.AddVertex(to)
	g.adj[from][to] = weight
}

// AddBiEdge records the edge in both directions with the same weight —
// shorthand for modeling an undirected connection.
func (g *Graph) AddBiEdge(a, b string, weight int64) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// neighbors exposes the raw adjacency row for u. Callers must not mutate it.
func (g *Graph) neighbors(u string) map[string]int64 { return g.adj[u] }
