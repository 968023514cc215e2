package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/elf"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/pacman"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/progress" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/adapters/report"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pacaudit/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the scanner Graft node.
	ScannerNodeID graft.ID = "engine.pipeline.scanner"
	// ClassifierNodeID is the unique identifier for the classifier Graft node.
	ClassifierNodeID graft.ID = "engine.pipeline.classifier"
)

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pacman.NodeID,
			fs.ArtifactsNodeID,
			elf.NodeID,
			progress.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			artifacts, err := graft.Dep[ports.ArtifactFilter](ctx)
			if err != nil {
				return nil, err
			}

			inspector, err := graft.Dep[ports.LinkInspector](ctx)
			if err != nil {
				return nil, err
			}

			prog, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScanner(packages, artifacts, inspector, prog, log), nil
		},
	})

	graft.Register(graft.Node[*Classifier]{
		ID:        ClassifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{elf.NodeID, report.NodeID},
		Run: func(ctx context.Context) (*Classifier, error) {
			inspector, err := graft.Dep[ports.LinkInspector](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewClassifier(inspector, reporter), nil
		},
	})
}
