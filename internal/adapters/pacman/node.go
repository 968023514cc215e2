package pacman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/shell"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.pacman"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner), nil
		},
	})
}
