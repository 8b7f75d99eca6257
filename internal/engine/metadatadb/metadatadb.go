// Package metadatadb implements the metadata database (part of C6/C3): it
// wraps a caller-supplied ports.RawMetadataSource — unmerged masterlist and
// userlist records, loaded from whatever catalogue format the caller uses —
// with the merge (C6, domain.MergeMetadata) and condition-evaluation (C3)
// passes the core is responsible for.
package metadatadb

import (
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"github.com/lacc97/libloot/internal/engine/condition"
)

var _ ports.Database = (*Database)(nil)

// Database is the concrete ports.Database. It holds no state of its own
// beyond its collaborators: every call re-reads the raw source, merges, and
// filters fresh, since the raw source is the owner of any caching it needs.
type Database struct {
	raw       ports.RawMetadataSource
	evaluator *condition.Evaluator
}

// New returns a Database backed by raw, evaluating conditions through eval.
func New(raw ports.RawMetadataSource, eval *condition.Evaluator) *Database {
	return &Database{raw: raw, evaluator: eval}
}

// GetPluginMetadata implements ports.Database: merges masterlist with
// userlist (C6) when includeUserMetadata is set, then filters every
// conditional sub-item (C3) when evaluateConditions is set.
func (d *Database) GetPluginMetadata(name string, includeUserMetadata, evaluateConditions bool) (ports.PluginMetadataResult, error) {
	masterlist, foundMaster := d.raw.MasterlistMetadata(name)
	if !foundMaster {
		masterlist = domain.NewPluginMetadata(name)
	}

	merged := masterlist
	found := foundMaster
	if includeUserMetadata {
		if user, ok := d.raw.UserMetadata(name); ok {
			merged = domain.MergeMetadata(masterlist, user)
			found = true
		}
	}
	if !found {
		return ports.PluginMetadataResult{Metadata: domain.NewPluginMetadata(name)}, nil
	}

	if evaluateConditions {
		filtered, err := d.evaluator.FilterMetadata(merged)
		if err != nil {
			return ports.PluginMetadataResult{}, err
		}
		merged = filtered
	}
	return ports.PluginMetadataResult{Metadata: merged, Found: found}, nil
}

// GetPluginUserMetadata implements ports.Database: the userlist record in
// isolation, optionally condition-filtered.
func (d *Database) GetPluginUserMetadata(name string, evaluateConditions bool) (ports.PluginMetadataResult, error) {
	user, ok := d.raw.UserMetadata(name)
	if !ok {
		return ports.PluginMetadataResult{Metadata: domain.NewPluginMetadata(name)}, nil
	}
	if evaluateConditions {
		filtered, err := d.evaluator.FilterMetadata(user)
		if err != nil {
			return ports.PluginMetadataResult{}, err
		}
		user = filtered
	}
	return ports.PluginMetadataResult{Metadata: user, Found: true}, nil
}

// GetGroups implements ports.Database: masterlist groups, plus userlist
// groups too when includeUserMetadata is set.
func (d *Database) GetGroups(includeUserMetadata bool) ports.GroupsResult {
	if !includeUserMetadata {
		return ports.GroupsResult{Groups: d.raw.MasterlistGroups()}
	}
	return ports.GroupsResult{Groups: domain.MergeGroups(d.raw.MasterlistGroups(), d.raw.UserGroups())}
}

// GetUserGroups implements ports.Database: the userlist groups in
// isolation.
func (d *Database) GetUserGroups() ports.GroupsResult {
	return ports.GroupsResult{Groups: d.raw.UserGroups()}
}
