package ports

import "github.com/lacc97/libloot/internal/core/domain"

// PluginMetadataResult wraps a possibly-absent metadata record, mirroring
// the "value_or(PluginMetadata(name))" default-construction idiom: absence
// is not an error, just an empty record.
type PluginMetadataResult struct {
	Metadata domain.PluginMetadata
	Found    bool
}

// GroupsResult wraps a group list.
type GroupsResult struct {
	Groups []domain.Group
}
