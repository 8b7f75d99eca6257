// Package ports defines the interfaces the core consumes from and exposes
// to its caller: plugin introspection (C1), the load-order handler, the
// metadata database, the filesystem, and logging (§6).
package ports

import "iter"

// PluginHandle is the read-only plugin-introspection capability the core
// consumes (C1, §4.1). Failure to introspect a plugin makes it unavailable:
// its vertex is never created.
//
//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type PluginHandle interface {
	Name() string
	IsMaster() bool
	Masters() []string
	OverrideFormIDs() map[uint32]struct{}
	// Version returns the plugin's version string and whether it has one.
	Version() (string, bool)
	// CRC returns the plugin's 32-bit checksum and whether it is known.
	CRC() (uint32, bool)
	// IsValidAt reports whether the plugin file this handle represents can
	// still be found and is well-formed at the given path.
	IsValidAt(path string) bool
}

// PluginCache is the game cache (C2, §4.2): a thread-safe memoisation of
// plugin handles, CRCs, condition results and archive paths.
type PluginCache interface {
	// Plugins returns the cached plugin handles, in the order callers must
	// guarantee is sorted (§5 Ordering guarantee).
	Plugins() iter.Seq[PluginHandle]
	Plugin(name string) (PluginHandle, bool)

	CacheCRC(filename string, crc uint32)
	CachedCRC(filename string) (uint32, bool)

	CacheCondition(condition string, result bool)
	CachedCondition(condition string) (bool, bool)

	ArchivePaths() iter.Seq[string]
	AddArchivePath(path string)

	ClearConditions()
	ClearPlugins()
	ClearCRCs()
	ClearArchivePaths()
}

// LoadOrderHandler answers questions only the external load-order machinery
// can: which plugins the game engine always loads regardless of metadata,
// and whether a given plugin is active.
type LoadOrderHandler interface {
	ImplicitlyActivePlugins() []string
	IsPluginActive(name string) bool
}

// Database exposes merged, condition-evaluated (or raw) plugin metadata and
// group definitions (§6).
type Database interface {
	// GetPluginMetadata returns the metadata record for name. If
	// includeUserMetadata is true, the masterlist and userlist records are
	// merged (C6). If evaluateConditions is true, every conditional
	// sub-item is filtered through the condition evaluator (C3) before
	// return.
	GetPluginMetadata(name string, includeUserMetadata, evaluateConditions bool) (PluginMetadataResult, error)
	GetPluginUserMetadata(name string, evaluateConditions bool) (PluginMetadataResult, error)

	// GetGroups returns the masterlist groups, plus userlist groups too if
	// includeUserMetadata is true.
	GetGroups(includeUserMetadata bool) GroupsResult
	GetUserGroups() GroupsResult
}

// Filesystem is the consumed filesystem capability (§6): existence checks,
// directory detection, canonicalisation and directory iteration, all
// relative to a game's data directory.
type Filesystem interface {
	Exists(path string) bool
	IsDirectory(path string) bool
	// Canonical resolves path to its canonical (symlink-free, absolute)
	// form. An error means the path cannot be resolved.
	Canonical(path string) (string, error)
	// DirectoryIterator lists the immediate entries of dir by name. An
	// error means dir could not be read.
	DirectoryIterator(dir string) ([]string, error)
}

// Logger is the five-severity sink consumed throughout the core (§6): no
// structured fields are required, only a message.
type Logger interface {
	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Game bundles the per-sort-run collaborators the sorter needs: its plugin
// cache, its metadata database, its load-order handler, its filesystem and
// the on-disk load order as given by the caller.
type Game interface {
	Cache() PluginCache
	Database() Database
	LoadOrderHandler() LoadOrderHandler
	Filesystem() Filesystem
	// DataPath is the directory plugin files are resolved relative to.
	DataPath() string
	// CurrentLoadOrder is the on-disk load order, most-recently-set first
	// is not assumed — order is whatever the caller's load-order file says.
	CurrentLoadOrder() []string
	// IsUpdateEsmExempt reports whether this game's hardcoded-ordering
	// phase should exempt "Update.esm" from implicit-plugin ordering
	// (true for Skyrim, §4.5 phase 3).
	IsUpdateEsmExempt() bool
}
