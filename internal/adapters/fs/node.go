package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const (
	ArtifactsNodeID graft.ID = "adapter.fs.artifacts"
	ResolverNodeID  graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactFilter]{
		ID:        ArtifactsNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactFilter, error) {
			return NewArtifacts(), nil
		},
	})

	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})
}
