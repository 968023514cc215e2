package orphan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/pacman" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter check Graft node.
const NodeID graft.ID = "engine.orphan"

func init() {
	graft.Register(graft.Node[*InterpreterCheck]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pacman.NodeID, fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*InterpreterCheck, error) {
			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewInterpreterCheck(packages, resolver, log), nil
		},
	})
}
