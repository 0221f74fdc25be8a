// Package shortest implements Dijkstra's shortest-path algorithm with an
// eager decrease-key frontier.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights. The
// frontier here is an indexed binary heap holding AT MOST ONE entry per
// vertex: when a relaxation improves a queued vertex's distance, the entry is
// updated in place via ChangePriority instead of pushing a duplicate and
// filtering stale pops later.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is inserted into and extracted from the heap at most once.
//   - Each edge relaxation performs at most one ChangePriority, O(log V).
//   - Space: O(V)
//   - The frontier never exceeds V entries — the payoff of eager
//     decrease-key over the duplicate-push variant, whose heap can grow
//     to O(E).
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any work is done.
//   - Edges with weight ≥ InfEdgeThreshold are treated as impassable walls.
//   - Exploration stops once the minimum distance in the frontier exceeds
//     MaxDistance.
package shortest

import (
	"fmt"

	"github.com/katalvlaran/pqheap/heapq"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if no path).
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v arrives through u;
//     prev is "" for the source and for unreachable vertices.
//   - err:  a sentinel error if inputs are invalid or a negative weight exists.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have a negative weight (ErrNegativeWeight).
func Dijkstra(g *Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options from defaults plus the caller's overrides.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 5) Pre-scan all edges to detect negative weights; fail fast.
	for u, row := range g.adj {
		for v, w := range row {
			if w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 6) Prepare per-run state and execute.
	r := newRunner(g, cfg)
	r.process()

	// 7) Hand back the predecessor map only when it was requested.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *Graph
	options  Options
	dist     map[string]int64           // vertex ID → current best distance from Source
	prev     map[string]string          // vertex ID → predecessor on the shortest path (optional)
	frontier *heapq.Heap[string, int64] // indexed min-heap; one entry per queued vertex
}

// newRunner initializes distances, the optional predecessor map, and the
// frontier seeded with the source at distance 0.
func newRunner(g *Graph, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]int64, n),
		frontier: heapq.NewOrdered[string](heapq.WithCapacity[int64](n)),
	}

	// 1) Every vertex starts unreachable; the source alone starts at 0.
	for _, v := range g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[cfg.Source] = 0

	// 2) Allocate the predecessor map only when the caller asked for paths.
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
		for _, v := range g.Vertices() {
			r.prev[v] = ""
		}
	}

	// 3) Seed the frontier. Insert on a fresh heap cannot fail.
	_ = r.frontier.Insert(cfg.Source, 0)

	return r
}

// process is the main loop: repeatedly extract the closest frontier vertex
// and relax its outgoing edges.
//
// With non-negative weights and one entry per vertex, a popped vertex's
// distance is final — no visited set or staleness check is needed, which is
// the structural simplification eager decrease-key buys.
func (r *runner) process() {
	for !r.frontier.IsEmpty() {
		// 1) Read the minimum distance before extracting the vertex; both
		//    cannot fail under the loop guard.
		d, _ := r.frontier.MinPriority()
		u, _ := r.frontier.RemoveMin()

		// 2) Stop entirely once the closest frontier vertex is out of range:
		//    everything still queued is at least as far.
		if d > r.options.MaxDistance {
			return
		}

		// 3) Relax all outgoing edges of u.
		r.relax(u, d)
	}
}

// relax examines each edge u→v and improves dist[v] where the path through u
// is strictly shorter, updating the queued entry in place (decrease-key) or
// inserting v into the frontier on first discovery.
func (r *runner) relax(u string, du int64) {
	for v, w := range r.g.neighbors(u) {
		// 1) Skip edges marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// 2) Candidate distance through u. Weights are non-negative and du is
		//    bounded by MaxDistance, so the sum cannot overflow in practice.
		nd := du + w

		// 3) Respect the exploration cap.
		if nd > r.options.MaxDistance {
			continue
		}

		// 4) Only strict improvements matter. Finalized vertices can never
		//    pass this test: their stored distance is already minimal.
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}

		// 5) Eager decrease-key: update the queued entry in place, or insert
		//    the vertex on first discovery. Exactly one of the two applies.
		if r.frontier.Contains(v) {
			_ = r.frontier.ChangePriority(v, nd)
		} else {
			_ = r.frontier.Insert(v, nd)
		}
	}
}
