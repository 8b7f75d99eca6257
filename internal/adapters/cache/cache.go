// Package cache implements the game cache (C2, §4.2): a thread-safe
// memoisation of plugin handles, CRCs and condition results, scoped for
// invalidation by category. It never evicts; it is only cleared explicitly.
package cache

import (
	"iter"
	"sync"

	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
)

var _ ports.PluginCache = (*GameCache)(nil)

// GameCache is the concrete C2 implementation: four keyed stores under one
// mutex, matching teacher's cas.Store single-mutex-guarded-map shape but
// extended to the four categories §4.2 names (conditions, crcs, plugins,
// archive paths). Plugin and CRC lookups are keyed by the Unicode
// case-folded filename (domain.FoldFilename); condition lookups are keyed
// by the exact source string, since the grammar has no semantic-equivalence
// relation to fold over (§9).
type GameCache struct {
	mu sync.RWMutex

	conditions map[string]bool
	crcs       map[string]uint32
	plugins    map[string]ports.PluginHandle
	// pluginOrder preserves insertion order so Plugins() yields a stable
	// sequence for the sorter's deterministic vertex insertion (§5).
	pluginOrder  []string
	archivePaths map[string]struct{}
}

// New returns an empty GameCache.
func New() *GameCache {
	return &GameCache{
		conditions:   map[string]bool{},
		crcs:         map[string]uint32{},
		plugins:      map[string]ports.PluginHandle{},
		archivePaths: map[string]struct{}{},
	}
}

// AddPlugin registers a plugin handle under its case-folded name. It is
// intended for use by the caller that populates the cache before a sort;
// re-adding the same name replaces the handle but preserves its original
// insertion position.
func (c *GameCache) AddPlugin(p ports.PluginHandle) {
	key := domain.FoldFilename(p.Name())
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.plugins[key]; !exists {
		c.pluginOrder = append(c.pluginOrder, key)
	}
	c.plugins[key] = p
}

// Plugins yields the cached plugin handles in insertion order.
func (c *GameCache) Plugins() iter.Seq[ports.PluginHandle] {
	return func(yield func(ports.PluginHandle) bool) {
		c.mu.RLock()
		order := append([]string(nil), c.pluginOrder...)
		handles := make([]ports.PluginHandle, 0, len(order))
		for _, key := range order {
			if h, ok := c.plugins[key]; ok {
				handles = append(handles, h)
			}
		}
		c.mu.RUnlock()

		for _, h := range handles {
			if !yield(h) {
				return
			}
		}
	}
}

// Plugin looks up a plugin handle by case-insensitive filename.
func (c *GameCache) Plugin(name string) (ports.PluginHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.plugins[domain.FoldFilename(name)]
	return h, ok
}

// CacheCRC records the checksum for filename.
func (c *GameCache) CacheCRC(filename string, crc uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crcs[domain.FoldFilename(filename)] = crc
}

// CachedCRC returns the cached checksum for filename, if any.
func (c *GameCache) CachedCRC(filename string) (uint32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	crc, ok := c.crcs[domain.FoldFilename(filename)]
	return crc, ok
}

// CacheCondition records the boolean result of evaluating condition,
// keyed on its exact source text (including whitespace).
func (c *GameCache) CacheCondition(condition string, result bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conditions[condition] = result
}

// CachedCondition returns the cached result for condition, if any.
func (c *GameCache) CachedCondition(condition string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.conditions[condition]
	return result, ok
}

// ArchivePaths yields the cached archive paths.
func (c *GameCache) ArchivePaths() iter.Seq[string] {
	return func(yield func(string) bool) {
		c.mu.RLock()
		paths := make([]string, 0, len(c.archivePaths))
		for p := range c.archivePaths {
			paths = append(paths, p)
		}
		c.mu.RUnlock()

		for _, p := range paths {
			if !yield(p) {
				return
			}
		}
	}
}

// AddArchivePath records path as a known archive location.
func (c *GameCache) AddArchivePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.archivePaths[path] = struct{}{}
}

// ClearConditions discards every cached condition result.
func (c *GameCache) ClearConditions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conditions = map[string]bool{}
}

// ClearPlugins discards every cached plugin handle. Handles previously
// handed out by Plugin/Plugins must not be retained across this call
// (§5 Shared-resource policy).
func (c *GameCache) ClearPlugins() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plugins = map[string]ports.PluginHandle{}
	c.pluginOrder = nil
}

// ClearCRCs discards every cached checksum.
func (c *GameCache) ClearCRCs() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crcs = map[string]uint32{}
}

// ClearArchivePaths discards every cached archive path.
func (c *GameCache) ClearArchivePaths() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.archivePaths = map[string]struct{}{}
}
