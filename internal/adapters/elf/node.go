package elf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/shell"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.elf"

func init() {
	graft.Register(graft.Node[ports.LinkInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.LinkInspector, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(runner), nil
		},
	})
}
