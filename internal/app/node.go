package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacaudit/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/export"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/pacman"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/adapters/systemd"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/pacaudit/internal/engine/orphan"
	"go.trai.ch/pacaudit/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pacman.NodeID,
			systemd.NodeID,
			pipeline.ScannerNodeID,
			pipeline.ClassifierNodeID,
			orphan.NodeID,
			progress.NodeID,
			report.NodeID,
			export.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	packages, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}

	services, err := graft.Dep[ports.ServiceLinkScanner](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[*pipeline.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[*pipeline.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	interpreterCheck, err := graft.Dep[*orphan.InterpreterCheck](ctx)
	if err != nil {
		return nil, err
	}

	prog, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, packages, services, scanner, classifier, interpreterCheck, prog, reporter, store, log), nil
}
