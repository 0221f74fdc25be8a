// Package shortest provides Dijkstra's single-source shortest-path algorithm
// over a minimal weighted digraph, built on the indexed binary heap with an
// eager decrease-key frontier.
//
// Overview:
//
//   - Dijkstra computes minimum-cost paths from one source to all reachable
//     vertices in O((V + E) log V), for non-negative edge weights.
//   - The frontier is a heapq.Heap keyed by vertex ID: at most one entry per
//     vertex, updated in place through ChangePriority when a relaxation finds
//     a shorter way in. The common alternative — pushing duplicate entries
//     and discarding stale pops — trades heap size (O(E)) for a simpler
//     queue; the indexed heap makes the O(V)-frontier variant just as simple.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance,
//     WithInfEdgeThreshold.
//   - ReturnPath: a predecessor map for rebuilding each shortest path.
//   - MaxDistance: aborts exploration beyond a given distance.
//   - InfEdgeThreshold: treats any edge at or above the threshold as a wall.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source was empty.
//   - ErrNilGraph:        a nil *Graph was passed.
//   - ErrVertexNotFound:  the source vertex is absent.
//   - ErrNegativeWeight:  a negative edge weight was found by the pre-scan.
//   - ErrBadMaxDistance:  (panic) negative MaxDistance.
//   - ErrBadInfThreshold: (panic) non-positive InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g *Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist[v] is the minimal distance from Source to v, or Unreachable.
//	  - prev[v] is v's predecessor on one shortest path ("" for the source
//	    and for unreachable vertices); nil unless WithReturnPath was given.
//
// Thread safety: Dijkstra reads the graph without locking; do not mutate the
// graph concurrently with a run.
package shortest
