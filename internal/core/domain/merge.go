package domain

// MergeMetadata merges a masterlist plugin record with a userlist plugin
// record for the same plugin (C6). Conditional sub-collections are
// unioned (by simple concatenation — duplicates are harmless since every
// item is independently condition-filtered downstream); scalar fields take
// the user's value when the user record sets one, else the masterlist's.
//
// Merging is deterministic and idempotent on identical inputs: the same
// pair of records always concatenates collections in the same order and
// picks the same scalar winner.
func MergeMetadata(masterlist, user PluginMetadata) PluginMetadata {
	merged := PluginMetadata{
		Name:              masterlist.Name,
		LoadAfterFiles:    concat(masterlist.LoadAfterFiles, user.LoadAfterFiles),
		Requirements:      concat(masterlist.Requirements, user.Requirements),
		Incompatibilities: concat(masterlist.Incompatibilities, user.Incompatibilities),
		Messages:          concat(masterlist.Messages, user.Messages),
		Tags:              concat(masterlist.Tags, user.Tags),
		DirtyInfo:         concat(masterlist.DirtyInfo, user.DirtyInfo),
		CleanInfo:         concat(masterlist.CleanInfo, user.CleanInfo),
		IsRegexPlugin:     masterlist.IsRegexPlugin || user.IsRegexPlugin,
	}
	if user.Name != "" {
		merged.Name = user.Name
	}

	merged.Group, merged.HasGroup = masterlist.Group, masterlist.HasGroup
	if user.HasGroup {
		merged.Group, merged.HasGroup = user.Group, true
	}

	merged.Enabled, merged.HasEnabled = masterlist.Enabled, masterlist.HasEnabled
	if user.HasEnabled {
		merged.Enabled, merged.HasEnabled = user.Enabled, true
	}

	return merged
}

func concat[T any](a, b []T) []T {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
