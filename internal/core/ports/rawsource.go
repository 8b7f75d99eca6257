package ports

import "github.com/lacc97/libloot/internal/core/domain"

// RawMetadataSource is the narrow capability a concrete Database
// implementation wraps: unmerged, unfiltered masterlist and userlist
// records and group lists, as already materialised from whatever on-disk
// catalogue format the caller uses (out of scope for this core, §1/§9
// External blockers). Everything downstream of this interface — merging
// (C6) and condition filtering (C3) — lives in the core.
type RawMetadataSource interface {
	MasterlistMetadata(name string) (domain.PluginMetadata, bool)
	UserMetadata(name string) (domain.PluginMetadata, bool)
	MasterlistGroups() []domain.Group
	UserGroups() []domain.Group
}
