package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lacc97/libloot/internal/adapters/fs"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFilesystem_ExistsAndIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "A.esp")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	f := fs.New()
	assert.True(t, f.Exists(file))
	assert.True(t, f.IsDirectory(dir))
	assert.False(t, f.IsDirectory(file))
	assert.False(t, f.Exists(filepath.Join(dir, "Missing.esp")))
}

func TestOSFilesystem_DirectoryIteratorIsSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"Z.esp", "A.esp", "M.esp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	f := fs.New()
	names, err := f.DirectoryIterator(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.esp", "M.esp", "Z.esp"}, names)
}

func TestOSFilesystem_CanonicalResolvesSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "real.esp")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	link := filepath.Join(dir, "link.esp")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	f := fs.New()
	resolved, err := f.Canonical(link)
	require.NoError(t, err)

	wantTarget, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, wantTarget, resolved)
}

func TestCRC32_ComputesIEEEChecksum(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "A.esp")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))

	crc, err := fs.CRC32(file)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x3610a686), crc)
}

func TestResolvePluginPath_PrefersBareFileThenGhost(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bare := filepath.Join(dir, "Bare.esp")
	require.NoError(t, os.WriteFile(bare, nil, 0o644))
	ghostedName := filepath.Join(dir, "Ghosted.esp")
	require.NoError(t, os.WriteFile(ghostedName+".ghost", nil, 0o644))

	f := fs.New()
	assert.Equal(t, bare, fs.ResolvePluginPath(f, bare))
	assert.Equal(t, ghostedName+".ghost", fs.ResolvePluginPath(f, ghostedName))

	missing := filepath.Join(dir, "Missing.esp")
	assert.Equal(t, missing, fs.ResolvePluginPath(f, missing), "neither form exists: the bare path is returned unchanged")
}

func TestValidateDataRelativePath_RejectsDoubleDotDotEscape(t *testing.T) {
	t.Parallel()

	assert.NoError(t, fs.ValidateDataRelativePath("Textures/foo.dds"))
	assert.NoError(t, fs.ValidateDataRelativePath("../Textures/foo.dds"), "a single escape is tolerated")

	err := fs.ValidateDataRelativePath("../../etc/passwd")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConditionSyntax)
}

func TestValidateDataRelativePath_RejectsChainedEscapeAfterRealSegment(t *testing.T) {
	t.Parallel()

	// filepath.Clean would collapse this to "../x" (one ".."), silently
	// letting the escape through; the raw components still show two
	// consecutive ".." segments and must be rejected.
	err := fs.ValidateDataRelativePath("a/../../x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConditionSyntax)

	assert.NoError(t, fs.ValidateDataRelativePath("./Textures/foo.dds"), "a leading '.' segment is dropped, not counted")
}
