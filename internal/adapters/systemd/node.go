package systemd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/fs"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.systemd"

func init() {
	graft.Register(graft.Node[ports.ServiceLinkScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID},
		Run: func(ctx context.Context) (ports.ServiceLinkScanner, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(resolver), nil
		},
	})
}
