package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lacc97/libloot/internal/core/ports"
)

// NodeID is the unique identifier for the OS filesystem Graft node.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.Filesystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Filesystem, error) {
			return New(), nil
		},
	})
}
