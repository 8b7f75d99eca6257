// Package fs implements the OS-backed filesystem adapter: existence
// checks, directory detection, canonicalisation and directory listing,
// plus CRC32 computation for condition evaluation and plugin checksums.
// Patterned on the teacher's internal/adapters/fs walker/hasher pair.
package fs

import (
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*OSFilesystem)(nil)

// OSFilesystem is the default ports.Filesystem, backed directly by the os
// and path/filepath packages.
type OSFilesystem struct{}

// New returns an OSFilesystem.
func New() *OSFilesystem { return &OSFilesystem{} }

// Exists reports whether path names an existing file or directory.
func (OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func (OSFilesystem) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Canonical resolves path to its canonical, symlink-free absolute form.
func (OSFilesystem) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve canonical path"), "path", path)
	}
	return resolved, nil
}

// DirectoryIterator lists the immediate entries of dir by name, sorted for
// determinism (directory read order is not guaranteed by the OS).
func (OSFilesystem) DirectoryIterator(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// CRC32 computes the CRC-32 (IEEE polynomial) checksum of the file at
// path. CRC32 is the wire-specified checksum algorithm this condition
// language compares against (§4.3 checksum()), so it is computed with the
// standard library's hash/crc32 rather than a third-party hashing library
// (see DESIGN.md).
func CRC32(path string) (uint32, error) {
	//nolint:gosec // path is validated by the caller before reaching here
	f, err := os.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best-effort close

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return h.Sum32(), nil
}

// ResolvePluginPath returns the path to check for a plugin file, falling
// back to path+".ghost" if the bare path does not exist (§4.3 file()).
func ResolvePluginPath(fsys ports.Filesystem, path string) string {
	if fsys.Exists(path) {
		return path
	}
	ghosted := path + ".ghost"
	if fsys.Exists(ghosted) {
		return ghosted
	}
	return path
}

// ValidateDataRelativePath rejects paths whose traversal would escape the
// data directory: any path containing two consecutive ".." segments is
// rejected outright, matching §4.3's path validation rule. Only "." is
// dropped from the raw component list first — the path is never run
// through filepath.Clean, which would collapse a "real/../../x" chain down
// to a single ".." and let it slip past; checking the raw components after
// dropping "." catches an escape introduced partway through the path, not
// just one anchored at its start. A single ".." is tolerated (e.g.
// "../Textures/foo.dds" referencing a sibling of Data is common in
// practice), but nothing that chains two or more escapes in a row.
func ValidateDataRelativePath(path string) error {
	parts := splitPath(filepath.ToSlash(path))
	consecutive := 0
	for _, part := range parts {
		switch part {
		case ".":
			continue
		case "..":
			consecutive++
			if consecutive >= 2 {
				return zerr.With(domain.ErrConditionSyntax, "reason", "path escapes data directory")
			}
		default:
			consecutive = 0
		}
	}
	return nil
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
