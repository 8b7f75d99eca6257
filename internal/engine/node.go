package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lacc97/libloot/internal/adapters/logger" //nolint:depguard // wired here
	"github.com/lacc97/libloot/internal/core/ports"
)

// NodeID is the unique identifier for the sort engine Graft node.
const NodeID graft.ID = "engine.sort"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
