package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportStore, error) {
			return NewStore(), nil
		},
	})
}
