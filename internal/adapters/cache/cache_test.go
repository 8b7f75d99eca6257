package cache_test

import (
	"sync"
	"testing"

	"github.com/lacc97/libloot/internal/adapters/cache"
	"github.com/lacc97/libloot/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct{ name string }

func (h fakeHandle) Name() string                        { return h.name }
func (h fakeHandle) IsMaster() bool                       { return false }
func (h fakeHandle) Masters() []string                    { return nil }
func (h fakeHandle) OverrideFormIDs() map[uint32]struct{} { return nil }
func (h fakeHandle) Version() (string, bool)              { return "", false }
func (h fakeHandle) CRC() (uint32, bool)                  { return 0, false }
func (h fakeHandle) IsValidAt(string) bool                { return true }

var _ ports.PluginHandle = fakeHandle{}

func TestGameCache_PluginLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "Dawnguard.esm"})

	h, ok := c.Plugin("DAWNGUARD.ESM")
	require.True(t, ok)
	assert.Equal(t, "Dawnguard.esm", h.Name())

	_, ok = c.Plugin("Missing.esm")
	assert.False(t, ok)
}

func TestGameCache_PluginsPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "Z.esp"})
	c.AddPlugin(fakeHandle{name: "A.esp"})
	c.AddPlugin(fakeHandle{name: "M.esp"})

	var names []string
	for h := range c.Plugins() {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"Z.esp", "A.esp", "M.esp"}, names)
}

func TestGameCache_ReAddingPluginPreservesPosition(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "A.esp"})
	c.AddPlugin(fakeHandle{name: "B.esp"})
	c.AddPlugin(fakeHandle{name: "A.esp"})

	var names []string
	for h := range c.Plugins() {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"A.esp", "B.esp"}, names)
}

func TestGameCache_CRCCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.CacheCRC("A.esp", 0xABCD)

	crc, ok := c.CachedCRC("a.esp")
	require.True(t, ok)
	assert.Equal(t, uint32(0xABCD), crc)
}

func TestGameCache_ConditionCacheIsCaseSensitive(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.CacheCondition(`file("A.esp")`, true)

	_, ok := c.CachedCondition(`file("a.esp")`)
	assert.False(t, ok, "condition cache keys on the exact source string")

	result, ok := c.CachedCondition(`file("A.esp")`)
	require.True(t, ok)
	assert.True(t, result)
}

func TestGameCache_ClearByCategory(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "A.esp"})
	c.CacheCRC("A.esp", 1)
	c.CacheCondition("cond", true)
	c.AddArchivePath("/data/archive.bsa")

	c.ClearConditions()
	_, ok := c.CachedCondition("cond")
	assert.False(t, ok)
	_, ok = c.Plugin("A.esp")
	assert.True(t, ok, "clearing conditions must not touch plugins")

	c.ClearPlugins()
	_, ok = c.Plugin("A.esp")
	assert.False(t, ok)

	c.ClearCRCs()
	_, ok = c.CachedCRC("A.esp")
	assert.False(t, ok)

	c.ClearArchivePaths()
	var paths []string
	for p := range c.ArchivePaths() {
		paths = append(paths, p)
	}
	assert.Empty(t, paths)
}

func TestGameCache_ConcurrentAccessIsRaceFree(t *testing.T) {
	t.Parallel()

	c := cache.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			c.AddPlugin(fakeHandle{name: "Plugin.esp"})
		}(i)
		go func(i int) {
			defer wg.Done()
			c.CacheCondition("cond", i%2 == 0)
		}(i)
		go func(i int) {
			defer wg.Done()
			for h := range c.Plugins() {
				_ = h.Name()
			}
		}(i)
	}
	wg.Wait()

	_, ok := c.Plugin("Plugin.esp")
	assert.True(t, ok)
}
