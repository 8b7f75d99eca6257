package domain

// DefaultGroup is the sentinel group name every plugin belongs to absent
// other metadata, and the group the resolver always includes even if no
// masterlist or userlist defines it.
const DefaultGroup = "default"

// Plugin is the sort-time payload for one plugin vertex. It is immutable
// once built for a single sort run (§3 Data Model).
type Plugin struct {
	// Name is the filename, case preserved for output.
	Name string
	// IsMaster determines master-vs-non-master ordering priority.
	IsMaster bool
	// Masters is the ordered sequence of filenames this plugin lists as
	// prerequisites.
	Masters []string
	// OverrideFormIDs is the set of 32-bit record identifiers this plugin
	// overrides from its masters.
	OverrideFormIDs map[uint32]struct{}
	// Version is an optional, leniently-parsed semver-ish string.
	Version string
	// HasVersion reports whether Version was set at all.
	HasVersion bool
	// CRC is an optional 32-bit checksum.
	CRC uint32
	// HasCRC reports whether CRC was computed.
	HasCRC bool
	// Group is the group this plugin is assigned to; defaults to
	// DefaultGroup.
	Group string

	MasterlistRequirements map[string]struct{}
	UserRequirements        map[string]struct{}
	MasterlistLoadAfter     map[string]struct{}
	UserLoadAfter           map[string]struct{}

	// LoadOrderIndex is the plugin's current position in the on-disk load
	// order, if any.
	LoadOrderIndex    int
	HasLoadOrderIndex bool

	// AfterGroupPlugins is the set of plugin names computed from the group
	// closure by the group resolver (C4) before sorting.
	AfterGroupPlugins map[string]struct{}
}

// NewPlugin builds a Plugin with its Group defaulted and its collections
// initialised to empty, non-nil maps so callers never need nil checks.
func NewPlugin(name string) *Plugin {
	return &Plugin{
		Name:                    name,
		OverrideFormIDs:         map[uint32]struct{}{},
		Group:                   DefaultGroup,
		MasterlistRequirements:  map[string]struct{}{},
		UserRequirements:        map[string]struct{}{},
		MasterlistLoadAfter:     map[string]struct{}{},
		UserLoadAfter:           map[string]struct{}{},
		AfterGroupPlugins:       map[string]struct{}{},
	}
}

// Basename returns the filename minus its final four characters (the
// extension), used by the tie-break comparator.
func (p *Plugin) Basename() string {
	if len(p.Name) < 4 {
		return p.Name
	}
	return p.Name[:len(p.Name)-4]
}

// Extension returns the final four characters of the filename.
func (p *Plugin) Extension() string {
	if len(p.Name) < 4 {
		return ""
	}
	return p.Name[len(p.Name)-4:]
}

// OverlapsWith reports whether p and other share at least one override
// form ID.
func (p *Plugin) OverlapsWith(other *Plugin) bool {
	small, big := p.OverrideFormIDs, other.OverrideFormIDs
	if len(big) < len(small) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			return true
		}
	}
	return false
}
