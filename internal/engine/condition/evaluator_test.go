package condition_test

import (
	"testing"

	"github.com/lacc97/libloot/internal/adapters/cache"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/engine/condition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandle is a minimal ports.PluginHandle for condition evaluation tests;
// the sorter's own tests exercise the graph-building fields, so only the
// fields conditions can observe (name, version, CRC) are populated here.
type fakeHandle struct {
	name       string
	version    string
	hasVersion bool
}

func (h fakeHandle) Name() string                         { return h.name }
func (h fakeHandle) IsMaster() bool                        { return false }
func (h fakeHandle) Masters() []string                     { return nil }
func (h fakeHandle) OverrideFormIDs() map[uint32]struct{}  { return nil }
func (h fakeHandle) Version() (string, bool)               { return h.version, h.hasVersion }
func (h fakeHandle) CRC() (uint32, bool)                   { return 0, false }
func (h fakeHandle) IsValidAt(string) bool                 { return true }

// fakeLoadOrder implements ports.LoadOrderHandler over a fixed active set.
type fakeLoadOrder struct {
	active map[string]struct{}
}

func newFakeLoadOrder(active ...string) *fakeLoadOrder {
	lo := &fakeLoadOrder{active: map[string]struct{}{}}
	for _, a := range active {
		lo.active[a] = struct{}{}
	}
	return lo
}

func (lo *fakeLoadOrder) ImplicitlyActivePlugins() []string { return nil }
func (lo *fakeLoadOrder) IsPluginActive(name string) bool {
	_, ok := lo.active[name]
	return ok
}

// fakeFilesystem implements ports.Filesystem over an in-memory tree of
// paths, each either a plain file or a directory listing.
type fakeFilesystem struct {
	files map[string]struct{}
	dirs  map[string][]string
}

func newFakeFilesystem() *fakeFilesystem {
	return &fakeFilesystem{files: map[string]struct{}{}, dirs: map[string][]string{}}
}

func (f *fakeFilesystem) withFile(path string) *fakeFilesystem {
	f.files[path] = struct{}{}
	return f
}

func (f *fakeFilesystem) withDir(path string, entries ...string) *fakeFilesystem {
	f.dirs[path] = entries
	return f
}

func (f *fakeFilesystem) Exists(path string) bool {
	if _, ok := f.files[path]; ok {
		return true
	}
	_, ok := f.dirs[path]
	return ok
}
func (f *fakeFilesystem) IsDirectory(path string) bool {
	_, ok := f.dirs[path]
	return ok
}
func (f *fakeFilesystem) Canonical(path string) (string, error) { return path, nil }
func (f *fakeFilesystem) DirectoryIterator(dir string) ([]string, error) {
	return f.dirs[dir], nil
}

func TestEvaluator_ParseOnlyModeReturnsFalseExceptEmpty(t *testing.T) {
	t.Parallel()

	e := condition.New(nil, nil, nil, "/data")
	ok, err := e.Evaluate(`file("A.esp")`)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Evaluate("")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluator_FileMatchesHostExecutableLiteral(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem()
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	ok, err := e.Evaluate(`file("LOOT")`)
	require.NoError(t, err)
	assert.True(t, ok)

	active, err := e.Evaluate(`active("LOOT")`)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestEvaluator_FileChecksCacheThenFilesystemWithGhostFallback(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "Cached.esp"})
	fsys := newFakeFilesystem().withFile("/data/OnDisk.esp.ghost")
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	ok, err := e.Evaluate(`file("Cached.esp")`)
	require.NoError(t, err)
	assert.True(t, ok, "a cached plugin handle satisfies file() without touching the filesystem")

	ok, err = e.Evaluate(`file("OnDisk.esp")`)
	require.NoError(t, err)
	assert.True(t, ok, "a .ghost file satisfies file() for the bare plugin name")

	ok, err = e.Evaluate(`file("Missing.esp")`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluator_ActiveQueriesLoadOrderHandler(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem()
	e := condition.New(c, newFakeLoadOrder("Active.esp"), fsys, "/data")

	ok, err := e.Evaluate(`active("Active.esp")`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`active("Inactive.esp")`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluator_RegexAndManyCountFilesInLiteralDirectory(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem().
		withDir("/data/Textures", "a.dds", "b.dds", "notes.txt")
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	ok, err := e.Evaluate(`regex("Textures/.*\.dds")`)
	require.NoError(t, err)
	assert.True(t, ok, "regex() needs only one match")

	ok, err = e.Evaluate(`many("Textures/.*\.dds")`)
	require.NoError(t, err)
	assert.True(t, ok, "two .dds files satisfy many()'s >=2 threshold")

	ok, err = e.Evaluate(`many("Textures/.*\.nif")`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluator_ManyActiveCountsActivePluginsMatchingRegex(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "Plugin1.esp"})
	c.AddPlugin(fakeHandle{name: "Plugin2.esp"})
	c.AddPlugin(fakeHandle{name: "Other.esp"})
	fsys := newFakeFilesystem()
	lo := newFakeLoadOrder("Plugin1.esp", "Plugin2.esp")
	e := condition.New(c, lo, fsys, "/data")

	ok, err := e.Evaluate(`many_active("Plugin[0-9]\.esp")`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluator_ChecksumComparesCRCAndCaches(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.CacheCRC("A.esp", 0xDEADBEEF)
	fsys := newFakeFilesystem()
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	ok, err := e.Evaluate(`checksum("A.esp", DEADBEEF)`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`checksum("A.esp", 00000000)`)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluator_VersionComparesLeniently(t *testing.T) {
	t.Parallel()

	c := cache.New()
	c.AddPlugin(fakeHandle{name: "A.esp", version: "1.2.3", hasVersion: true})
	fsys := newFakeFilesystem().withFile("/data/A.esp")
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	ok, err := e.Evaluate(`version("A.esp", "1.2", ">=")`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`version("A.esp", "1.2.3", "==")`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`version("A.esp", "2.0", "<")`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluator_VersionOfMissingFileBehavesAsLesser(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem()
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	for _, cmp := range []string{"!=", "<", "<="} {
		ok, err := e.Evaluate(`version("Missing.esp", "1.0", "` + cmp + `")`)
		require.NoError(t, err)
		assert.Truef(t, ok, "comparator %s must be true against a missing file", cmp)
	}
	for _, cmp := range []string{"==", ">", ">="} {
		ok, err := e.Evaluate(`version("Missing.esp", "1.0", "` + cmp + `")`)
		require.NoError(t, err)
		assert.Falsef(t, ok, "comparator %s must be false against a missing file", cmp)
	}
}

func TestEvaluator_ResultIsCachedByExactSourceString(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem().withFile("/data/A.esp")
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	const cond = `file("A.esp")`
	first, err := e.Evaluate(cond)
	require.NoError(t, err)
	assert.True(t, first)

	cached, ok := c.CachedCondition(cond)
	require.True(t, ok)
	assert.True(t, cached)
}

func TestEvaluator_PathEscapingDataDirectoryIsRejected(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem()
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	_, err := e.Evaluate(`file("../../etc/passwd")`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConditionSyntax)
}

func TestEvaluator_InvalidRegexIsConditionSyntaxError(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem().withDir("/data/Textures")
	e := condition.New(c, newFakeLoadOrder(), fsys, "/data")

	_, err := e.Evaluate(`regex("Textures/[")`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConditionSyntax)
}

func TestEvaluator_AndOrNotCompose(t *testing.T) {
	t.Parallel()

	c := cache.New()
	fsys := newFakeFilesystem().withFile("/data/A.esp")
	e := condition.New(c, newFakeLoadOrder("B.esp"), fsys, "/data")

	ok, err := e.Evaluate(`file("A.esp") and active("B.esp")`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`not file("Missing.esp") and active("B.esp")`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate(`file("Missing.esp") or active("B.esp")`)
	require.NoError(t, err)
	assert.True(t, ok)
}
