// Package domain contains the core domain models for the load-order
// optimisation engine: plugins, groups, edges, and the plugin graph itself.
package domain

import (
	"github.com/cespare/xxhash/v2"
)

// VertexID is an index into Graph.vertices. Using integer IDs with a side
// table (rather than pointer-linked nodes) keeps reachability queries
// allocation-free and gives trivial lifetime rules — the graph and its
// paths cache live only for the duration of one sort (§3 Lifecycle).
type VertexID int

// Graph is the plugin graph (§3, §4.5): an insertion-ordered vertex list
// with per-vertex adjacency, plus a paths cache of known-reachable pairs
// used to short-circuit cycle prediction. Determinism depends on vertices
// being added in a stable order and on edges never being reconsidered once
// the first phase that offers them has run (§5 Ordering guarantee).
type Graph struct {
	names   []string // vertices in insertion order, index == VertexID
	byName  map[string]VertexID
	plugins []*Plugin

	out [][]edgeRef // out[v] = edges leaving v, in insertion order
	in  [][]edgeRef // in[v] = edges entering v

	// hasEdge[(u,v)] records that an edge u->v of any type already exists,
	// enforcing "at most one edge per ordered pair, first phase wins".
	hasEdge map[pairKey]struct{}

	// paths is the reachability cache described in §9: only pairs
	// discovered during AddEdge/WouldCreateCycle are stored. It is sound as
	// an "already reachable" short-circuit and a duplicate-edge filter, but
	// is not a full transitive closure.
	paths map[pairKey]struct{}
}

type edgeRef struct {
	to   VertexID
	kind EdgeType
}

type pairKey uint64

func keyFor(u, v VertexID) pairKey {
	var buf [16]byte
	putUint64(buf[0:8], uint64(u))
	putUint64(buf[8:16], uint64(v))
	return pairKey(xxhash.Sum64(buf[:]))
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// NewGraph returns an empty plugin graph.
func NewGraph() *Graph {
	return &Graph{
		byName:  map[string]VertexID{},
		hasEdge: map[pairKey]struct{}{},
		paths:   map[pairKey]struct{}{},
	}
}

// AddVertex adds a plugin vertex, preserving insertion order. It is a
// programming error to add the same plugin name twice; callers (the
// engine) deduplicate by the case-folded name before calling this.
func (g *Graph) AddVertex(p *Plugin) VertexID {
	id := VertexID(len(g.names))
	g.names = append(g.names, p.Name)
	g.plugins = append(g.plugins, p)
	g.byName[FoldFilename(p.Name)] = id
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.names) }

// Vertices returns every vertex ID in insertion order.
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, len(g.names))
	for i := range ids {
		ids[i] = VertexID(i)
	}
	return ids
}

// VertexByName looks up a vertex by case-insensitive filename.
func (g *Graph) VertexByName(name string) (VertexID, bool) {
	id, ok := g.byName[FoldFilename(name)]
	return id, ok
}

// Plugin returns the plugin payload for a vertex.
func (g *Graph) Plugin(v VertexID) *Plugin { return g.plugins[v] }

// HasEdge reports whether an edge u->v of any type already exists.
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.hasEdge[keyFor(u, v)]
	return ok
}

// WouldCreateCycle implements §4.5's would_create_cycle(u,v): would adding
// edge u->v create a cycle? It short-circuits on the paths cache, then runs
// a bidirectional BFS — a forward frontier from v and a reverse frontier
// from u — stopping as soon as the frontiers meet or either reaches the
// other endpoint. Every vertex discovered is recorded in the paths cache
// along the way, so repeated calls against an unchanged graph region get
// progressively cheaper.
func (g *Graph) WouldCreateCycle(u, v VertexID) bool {
	if _, ok := g.paths[keyFor(v, u)]; ok {
		return true
	}

	start, end := v, u

	forwardQueue := []VertexID{start}
	reverseQueue := []VertexID{end}
	forwardVisited := map[VertexID]struct{}{start: {}}
	reverseVisited := map[VertexID]struct{}{end: {}}

	for len(forwardQueue) > 0 && len(reverseQueue) > 0 {
		if len(forwardQueue) > 0 {
			w := forwardQueue[0]
			forwardQueue = forwardQueue[1:]
			if w == end {
				return true
			}
			if _, ok := reverseVisited[w]; ok {
				return true
			}
			for _, e := range g.out[w] {
				if _, ok := forwardVisited[e.to]; !ok {
					g.paths[keyFor(start, e.to)] = struct{}{}
					forwardVisited[e.to] = struct{}{}
					forwardQueue = append(forwardQueue, e.to)
				}
			}
		}
		if len(reverseQueue) > 0 {
			w := reverseQueue[0]
			reverseQueue = reverseQueue[1:]
			if w == start {
				return true
			}
			if _, ok := forwardVisited[w]; ok {
				return true
			}
			for _, e := range g.in[w] {
				if _, ok := reverseVisited[e.to]; !ok {
					g.paths[keyFor(e.to, end)] = struct{}{}
					reverseVisited[e.to] = struct{}{}
					reverseQueue = append(reverseQueue, e.to)
				}
			}
		}
	}

	return false
}

// AddEdge implements §4.5's add_edge(u,v): a no-op if u->v is already known
// reachable (keeps the graph sparse and prevents duplicate edges),
// otherwise records the edge and marks (u,v) reachable in the paths cache.
// Returns whether an edge was actually added.
func (g *Graph) AddEdge(u, v VertexID, kind EdgeType) bool {
	key := keyFor(u, v)
	if _, ok := g.paths[key]; ok {
		return false
	}

	g.out[u] = append(g.out[u], edgeRef{to: v, kind: kind})
	g.in[v] = append(g.in[v], edgeRef{to: u, kind: kind})
	g.hasEdge[key] = struct{}{}
	g.paths[key] = struct{}{}
	return true
}

// EdgeType returns the type of the edge u->v, if one exists.
func (g *Graph) EdgeType(u, v VertexID) (EdgeType, bool) {
	for _, e := range g.out[u] {
		if e.to == v {
			return e.kind, true
		}
	}
	return 0, false
}

// CheckForCycles runs a final depth-first cycle detection pass over the
// assembled graph (§4.5 Final verification). On finding one, it returns a
// CyclicInteraction error carrying the vertex cycle and the edge type
// connecting each consecutive pair, matching the error contract of §6/§7.
func (g *Graph) CheckForCycles() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make([]int, len(g.names))
	var path []VertexID

	var visit func(u VertexID) error
	visit = func(u VertexID) error {
		state[u] = visiting
		path = append(path, u)

		for _, e := range g.out[u] {
			switch state[e.to] {
			case visiting:
				return g.cycleError(path, e.to)
			case unvisited:
				if err := visit(e.to); err != nil {
					return err
				}
			}
		}

		state[u] = done
		path = path[:len(path)-1]
		return nil
	}

	for v := range g.names {
		if state[v] == unvisited {
			if err := visit(VertexID(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) cycleError(path []VertexID, closesAt VertexID) error {
	startIdx := 0
	for i, v := range path {
		if v == closesAt {
			startIdx = i
			break
		}
	}
	cycle := path[startIdx:]

	steps := make([]CycleStep, 0, len(cycle)+1)
	for i, v := range cycle {
		prev := cycle[(i-1+len(cycle))%len(cycle)]
		kind, _ := g.EdgeType(prev, v)
		steps = append(steps, CycleStep{Name: g.names[v], IncomingEdge: kind})
	}
	return NewCyclicInteractionError(steps)
}

// TopologicalSort returns vertices in a stable topological order. Any valid
// topological order is acceptable per §4.5 since the tie-break phase
// guarantees a Hamiltonian path (a unique order); a plain Kahn's-algorithm
// sort with a first-in first-out ready queue, seeded in insertion order, is
// sufficient and keeps the result deterministic for a given graph.
func (g *Graph) TopologicalSort() []VertexID {
	indegree := make([]int, len(g.names))
	for v := range g.names {
		indegree[v] = len(g.in[v])
	}

	ready := make([]VertexID, 0, len(g.names))
	for v := range g.names {
		if indegree[v] == 0 {
			ready = append(ready, VertexID(v))
		}
	}

	order := make([]VertexID, 0, len(g.names))
	for len(ready) > 0 {
		u := ready[0]
		ready = ready[1:]
		order = append(order, u)
		for _, e := range g.out[u] {
			indegree[e.to]--
			if indegree[e.to] == 0 {
				ready = append(ready, e.to)
			}
		}
	}
	return order
}

// Name returns the case-preserved filename for a vertex.
func (g *Graph) Name(v VertexID) string { return g.names[v] }

// HasDirectEdge reports whether an edge exists between u and v in either
// direction, used by the uniqueness check after sorting (§4.5).
func (g *Graph) HasDirectEdge(u, v VertexID) bool {
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}
