package domain

// Group is a node in the group DAG: a named ordering bucket that must load
// after zero or more other named groups.
type Group struct {
	Name        string
	AfterGroups map[string]struct{}
}

// NewGroup returns a Group with an empty after-set.
func NewGroup(name string) Group {
	return Group{Name: name, AfterGroups: map[string]struct{}{}}
}

// MergeGroups merges masterlist groups M with userlist groups U: for every
// group name present in both, their after-group sets are unioned (§4.4).
// The implicit "default" group is always present in the result even if
// neither input defines it.
func MergeGroups(masterlist, user []Group) []Group {
	byName := make(map[string]Group, len(masterlist)+len(user)+1)
	order := make([]string, 0, len(masterlist)+len(user)+1)

	add := func(g Group) {
		existing, ok := byName[g.Name]
		if !ok {
			clone := Group{Name: g.Name, AfterGroups: map[string]struct{}{}}
			for a := range g.AfterGroups {
				clone.AfterGroups[a] = struct{}{}
			}
			byName[g.Name] = clone
			order = append(order, g.Name)
			return
		}
		for a := range g.AfterGroups {
			existing.AfterGroups[a] = struct{}{}
		}
	}

	for _, g := range masterlist {
		add(g)
	}
	for _, g := range user {
		add(g)
	}
	if _, ok := byName[DefaultGroup]; !ok {
		byName[DefaultGroup] = NewGroup(DefaultGroup)
		order = append(order, DefaultGroup)
	}

	merged := make([]Group, len(order))
	for i, name := range order {
		merged[i] = byName[name]
	}
	return merged
}
