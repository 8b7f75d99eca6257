package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lacc97/libloot/internal/core/ports"
)

// NodeID is the unique identifier for the game cache Graft node. The cache
// is process-lifetime, matching its role as C2's long-lived memoisation
// store: callers clear the categories they need between games rather than
// rebuilding it.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.PluginCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PluginCache, error) {
			return New(), nil
		},
	})
}
