// Package wiring registers every Graft node for the library's process-wide
// singleton adapters and the sort engine façade. Per-sort-run collaborators
// — the condition evaluator, the group resolver, the metadata database and
// the plugin sorter itself — are deliberately not wired here: each is
// scoped to one game and one sort (§5 Shared-resource policy), constructed
// fresh by the caller assembling a ports.Game rather than resolved from the
// DI graph.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lacc97/libloot/internal/adapters/cache"
	_ "github.com/lacc97/libloot/internal/adapters/fs"
	_ "github.com/lacc97/libloot/internal/adapters/logger"
	// Register the engine node.
	_ "github.com/lacc97/libloot/internal/engine"
)
