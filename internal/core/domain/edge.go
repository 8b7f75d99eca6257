package domain

// EdgeType identifies why an edge was added to the plugin graph, ordered
// from strongest to weakest (tie-break edges, added last, only break
// remaining ties). The sorter's phase order does not follow this order
// exactly: master_flag edges are added first, then the master/requirement/
// load-after edges, and hardcoded edges only in the third phase.
type EdgeType int

const (
	EdgeHardcoded EdgeType = iota
	EdgeMasterFlag
	EdgeMaster
	EdgeMasterlistRequirement
	EdgeUserRequirement
	EdgeMasterlistLoadAfter
	EdgeUserLoadAfter
	EdgeGroup
	EdgeOverlap
	EdgeTieBreak

	// EdgeLoadAfter labels a step in a group-graph cycle (§4.4): it is
	// never added to the plugin graph itself (group-graph edges live in
	// the resolver, not in domain.Graph), it only appears as the
	// IncomingEdge of a CycleStep reported for a group cycle, per the
	// error contract in §4.4/§8 scenario 4.
	EdgeLoadAfter
)

func (t EdgeType) String() string {
	switch t {
	case EdgeHardcoded:
		return "hardcoded"
	case EdgeMasterFlag:
		return "master_flag"
	case EdgeMaster:
		return "master"
	case EdgeMasterlistRequirement:
		return "masterlist_requirement"
	case EdgeUserRequirement:
		return "user_requirement"
	case EdgeMasterlistLoadAfter:
		return "masterlist_load_after"
	case EdgeUserLoadAfter:
		return "user_load_after"
	case EdgeGroup:
		return "group"
	case EdgeOverlap:
		return "overlap"
	case EdgeTieBreak:
		return "tie_break"
	case EdgeLoadAfter:
		return "load_after"
	default:
		return "unknown"
	}
}
