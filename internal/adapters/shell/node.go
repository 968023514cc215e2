package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			return NewRunner(DefaultEnvironment...), nil
		},
	})
}
