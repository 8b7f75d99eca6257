// Package sorter implements the plugin sorter (C5, §4.5): it materialises
// one vertex per plugin, runs the six fixed edge-addition phases (master
// flag, dependencies, hardcoded, group, overlap, tie-break), verifies
// acyclicity, topologically sorts, and
// returns the ordered plugin names. Patterned on the teacher's phased
// graph-builder, generalised from its original domain to plugin load-order
// edges.
package sorter

import (
	"path"
	"sort"

	"github.com/lacc97/libloot/internal/adapters/fs"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"github.com/lacc97/libloot/internal/engine/groups"
)

// Sorter builds and sorts one plugin graph per call to Sort. It holds no
// state across calls: the graph and its paths cache are local to one run
// (§5 Shared-resource policy).
type Sorter struct {
	fsys     ports.Filesystem
	dataPath string
	logger   ports.Logger
}

// New returns a Sorter. fsys and dataPath are used to canonicalise plugin
// paths for the hardcoded-ordering phase; logger receives trace/warn
// messages for skipped edges and the final uniqueness check.
func New(fsys ports.Filesystem, dataPath string, logger ports.Logger) *Sorter {
	return &Sorter{fsys: fsys, dataPath: dataPath, logger: logger}
}

// Sort implements §4.5 end to end. plugins must already carry merged,
// condition-filtered metadata and group attribution (C6, C4); implicit is
// the external load-order handler's implicitly-active list; updateEsmExempt
// mirrors ports.Game.IsUpdateEsmExempt. Vertices are inserted in the order
// plugins is given, which the caller must have already sorted by the plugin
// cache's iteration order (§5 Ordering guarantee).
func (s *Sorter) Sort(plugins []*domain.Plugin, resolver *groups.Resolver, implicit []string, updateEsmExempt bool) ([]string, error) {
	g := domain.NewGraph()
	for _, p := range plugins {
		g.AddVertex(p)
	}

	s.addMasterFlagEdges(g)
	s.addDependencyEdges(g)
	s.addHardcodedEdges(g, implicit, updateEsmExempt)
	s.addGroupEdges(g, resolver)
	s.addOverlapEdges(g)
	s.addTieBreakEdges(g)

	if err := g.CheckForCycles(); err != nil {
		return nil, err
	}

	order := g.TopologicalSort()
	s.warnIfNotHamiltonian(g, order)

	names := make([]string, len(order))
	for i, v := range order {
		names[i] = g.Name(v)
	}
	return names, nil
}

// addMasterFlagEdges is phase 1: for every unordered pair with mismatched
// is_master, add an edge from the master to the non-master. Consistent by
// construction — no cycle check (§4.5 phase order note).
func (s *Sorter) addMasterFlagEdges(g *domain.Graph) {
	vertices := g.Vertices()
	for i, u := range vertices {
		pu := g.Plugin(u)
		for _, v := range vertices[i+1:] {
			pv := g.Plugin(v)
			if pu.IsMaster == pv.IsMaster {
				continue
			}
			if pu.IsMaster {
				g.AddEdge(u, v, domain.EdgeMasterFlag)
			} else {
				g.AddEdge(v, u, domain.EdgeMasterFlag)
			}
		}
	}
}

// addDependencyEdges is phase 2: for each plugin, add an edge from each
// referenced file's vertex (if present) to this plugin, across the five
// file-reference kinds in order of decreasing strength. A missing
// referenced vertex is silently skipped (§4.5 phase 2) — the reference is
// still considered satisfied for sort purposes. Consistent by construction
// — no cycle check.
func (s *Sorter) addDependencyEdges(g *domain.Graph) {
	vertices := g.Vertices()

	addFrom := func(names []string, kind domain.EdgeType, self domain.VertexID) {
		for _, name := range names {
			from, ok := g.VertexByName(name)
			if !ok {
				continue
			}
			g.AddEdge(from, self, kind)
		}
	}
	addFromSet := func(set map[string]struct{}, kind domain.EdgeType, self domain.VertexID) {
		addFrom(sortedKeys(set), kind, self)
	}

	for _, v := range vertices {
		addFrom(g.Plugin(v).Masters, domain.EdgeMaster, v)
	}
	for _, v := range vertices {
		addFromSet(g.Plugin(v).MasterlistRequirements, domain.EdgeMasterlistRequirement, v)
	}
	for _, v := range vertices {
		addFromSet(g.Plugin(v).UserRequirements, domain.EdgeUserRequirement, v)
	}
	for _, v := range vertices {
		addFromSet(g.Plugin(v).MasterlistLoadAfter, domain.EdgeMasterlistLoadAfter, v)
	}
	for _, v := range vertices {
		addFromSet(g.Plugin(v).UserLoadAfter, domain.EdgeUserLoadAfter, v)
	}
}

// canonicalPluginPath resolves name (with .ghost fallback) relative to the
// data directory and canonicalises it, for comparison in the hardcoded
// phase.
func (s *Sorter) canonicalPluginPath(name string) (string, error) {
	full := path.Join(s.dataPath, name)
	resolved := fs.ResolvePluginPath(s.fsys, full)
	return s.fsys.Canonical(resolved)
}

// addHardcodedEdges is phase 3: every implicitly-active plugin whose
// canonical path resolves is ordered before every other plugin, also
// canonical-path-resolvable, that is not itself implicitly active.
// Skyrim's Update.esm is excluded from the implicitly-active set entirely
// when updateEsmExempt is true (§4.5 phase 3; the skip is unconditional,
// per the Open Question resolution — no logger guard gates it).
func (s *Sorter) addHardcodedEdges(g *domain.Graph, implicit []string, updateEsmExempt bool) {
	vertices := g.Vertices()

	resolvable := make(map[domain.VertexID]struct{}, len(vertices))
	for _, v := range vertices {
		if _, err := s.canonicalPluginPath(g.Name(v)); err == nil {
			resolvable[v] = struct{}{}
		} else {
			s.logger.Warn("could not resolve canonical path for " + g.Name(v) + ", excluding from hardcoded ordering")
		}
	}

	var roots []domain.VertexID
	rootSet := map[domain.VertexID]struct{}{}
	for _, name := range implicit {
		if updateEsmExempt && domain.EqualFilenames(name, "Update.esm") {
			continue
		}
		v, ok := g.VertexByName(name)
		if !ok {
			continue
		}
		if _, ok := resolvable[v]; !ok {
			continue
		}
		roots = append(roots, v)
		rootSet[v] = struct{}{}
	}

	for _, u := range roots {
		for _, v := range vertices {
			if v == u {
				continue
			}
			if _, ok := resolvable[v]; !ok {
				continue
			}
			if _, ok := rootSet[v]; ok {
				continue
			}
			if g.WouldCreateCycle(u, v) {
				s.logger.Trace("skipping hardcoded edge that would create a cycle: " + g.Name(u) + " -> " + g.Name(v))
				continue
			}
			g.AddEdge(u, v, domain.EdgeHardcoded)
		}
	}
}

type groupCandidate struct {
	q, p           domain.VertexID
	qGroup, pGroup string
}

// addGroupEdges is phase 4 (§4.5): for every plugin p and every plugin q in
// p's attributed after-group-plugins set, try to add q->p. Candidates that
// would create a cycle are resolved by the group cycle-ignore heuristic: a
// candidate whose earlier plugin q is a non-master and later plugin p a
// master is skipped outright (the master_flag edge already orders them);
// otherwise, if exactly one side's plugin is in the
// default group, that plugin is "ignored" for its own group plus every
// group lying on the group-graph path between the two groups, suppressing
// later candidates pairing it with any of those groups. Candidates
// involving two non-default groups (or two default-group plugins — the
// Open Question's preserved behaviour) are skipped without ignoring
// either side.
func (s *Sorter) addGroupEdges(g *domain.Graph, resolver *groups.Resolver) {
	var candidates []groupCandidate
	for _, p := range g.Vertices() {
		pp := g.Plugin(p)
		for _, name := range sortedKeys(pp.AfterGroupPlugins) {
			q, ok := g.VertexByName(name)
			if !ok {
				continue
			}
			candidates = append(candidates, groupCandidate{
				q: q, p: p,
				qGroup: g.Plugin(q).Group, pGroup: pp.Group,
			})
		}
	}

	ignored := map[domain.VertexID]map[string]struct{}{}
	suppressed := func(c groupCandidate) bool {
		if set, ok := ignored[c.q]; ok {
			if _, bad := set[c.pGroup]; bad {
				return true
			}
		}
		if set, ok := ignored[c.p]; ok {
			if _, bad := set[c.qGroup]; bad {
				return true
			}
		}
		return false
	}
	ignore := func(v domain.VertexID, group string, extra map[string]struct{}) {
		set := ignored[v]
		if set == nil {
			set = map[string]struct{}{}
			ignored[v] = set
		}
		set[group] = struct{}{}
		for name := range extra {
			set[name] = struct{}{}
		}
	}

	for _, c := range candidates {
		if suppressed(c) {
			continue
		}
		if !g.WouldCreateCycle(c.q, c.p) {
			g.AddEdge(c.q, c.p, domain.EdgeGroup)
			continue
		}

		qMaster, pMaster := g.Plugin(c.q).IsMaster, g.Plugin(c.p).IsMaster
		if !qMaster && pMaster {
			s.logger.Trace("skipping group edge already ordered by master flag: " + g.Name(c.q) + " -> " + g.Name(c.p))
			continue
		}

		qDefault := c.qGroup == domain.DefaultGroup
		pDefault := c.pGroup == domain.DefaultGroup
		if qDefault != pDefault {
			onPath := resolver.PathGroups(c.qGroup, c.pGroup)
			if qDefault {
				ignore(c.q, domain.DefaultGroup, onPath)
			} else {
				ignore(c.p, domain.DefaultGroup, onPath)
			}
			s.logger.Trace("ignoring default group for remainder of group-edge pass involving " + g.Name(c.q) + "/" + g.Name(c.p))
			continue
		}

		s.logger.Trace("skipping group edge that would create a cycle: " + g.Name(c.q) + " -> " + g.Name(c.p))
	}
}

// addOverlapEdges is phase 5: for each unordered pair that shares at least
// one override form-ID, has no pre-existing edge in either direction and
// differing override counts, add an edge from the larger override set to
// the smaller — unless that would create a cycle.
func (s *Sorter) addOverlapEdges(g *domain.Graph) {
	vertices := g.Vertices()
	for i, u := range vertices {
		pu := g.Plugin(u)
		if len(pu.OverrideFormIDs) == 0 {
			continue
		}
		for _, v := range vertices[i+1:] {
			pv := g.Plugin(v)
			if len(pv.OverrideFormIDs) == 0 {
				continue
			}
			if len(pu.OverrideFormIDs) == len(pv.OverrideFormIDs) {
				continue
			}
			if g.HasDirectEdge(u, v) {
				continue
			}
			if !pu.OverlapsWith(pv) {
				continue
			}

			from, to := u, v
			if len(pv.OverrideFormIDs) > len(pu.OverrideFormIDs) {
				from, to = v, u
			}
			if g.WouldCreateCycle(from, to) {
				s.logger.Trace("skipping overlap edge that would create a cycle: " + g.Name(from) + " -> " + g.Name(to))
				continue
			}
			g.AddEdge(from, to, domain.EdgeOverlap)
		}
	}
}

// addTieBreakEdges is phase 6: for every unordered pair not yet connected
// in either direction, add a directed edge determined by the tie-break
// comparator, unless that would create a cycle — in which case the pair is
// left unconnected (logged by the uniqueness check after sorting).
func (s *Sorter) addTieBreakEdges(g *domain.Graph) {
	vertices := g.Vertices()
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if g.HasDirectEdge(u, v) {
				continue
			}
			from, to := tieBreakOrder(g.Plugin(u), u, g.Plugin(v), v)
			if g.WouldCreateCycle(from, to) {
				s.logger.Trace("skipping tie-break edge that would create a cycle: " + g.Name(from) + " -> " + g.Name(to))
				continue
			}
			g.AddEdge(from, to, domain.EdgeTieBreak)
		}
	}
}

// tieBreakOrder implements the tie-break comparator (§4.5): a plugin with a
// current load-order index precedes one without; between two with indices,
// the smaller precedes; between two without, basenames then extensions are
// compared case-insensitively.
func tieBreakOrder(pu *domain.Plugin, u domain.VertexID, pv *domain.Plugin, v domain.VertexID) (from, to domain.VertexID) {
	switch {
	case pu.HasLoadOrderIndex && !pv.HasLoadOrderIndex:
		return u, v
	case pv.HasLoadOrderIndex && !pu.HasLoadOrderIndex:
		return v, u
	case pu.HasLoadOrderIndex && pv.HasLoadOrderIndex:
		if pu.LoadOrderIndex <= pv.LoadOrderIndex {
			return u, v
		}
		return v, u
	}

	if c := domain.CompareFilenames(pu.Basename(), pv.Basename()); c != 0 {
		if c < 0 {
			return u, v
		}
		return v, u
	}
	if domain.CompareFilenames(pu.Extension(), pv.Extension()) <= 0 {
		return u, v
	}
	return v, u
}

// warnIfNotHamiltonian logs a warning for any two consecutive vertices in
// order with no direct edge between them — expected never to fire after
// phase 6 (§4.5 Uniqueness warning); its presence would indicate a
// programming error in an earlier phase.
func (s *Sorter) warnIfNotHamiltonian(g *domain.Graph, order []domain.VertexID) {
	for i := 1; i < len(order); i++ {
		if !g.HasDirectEdge(order[i-1], order[i]) {
			s.logger.Warn("no direct edge between consecutive plugins " + g.Name(order[i-1]) + " and " + g.Name(order[i]))
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
