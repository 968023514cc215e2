// Package app implements the application layer for pacaudit.
package app

import (
	"context"
	"errors"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/pacaudit/internal/engine/orphan"
	"go.trai.ch/pacaudit/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures one audit run.
type RunOptions struct {
	// ConfigPath is the configuration file; empty means the default location.
	ConfigPath string

	// Verbose adds the raw LibMap and PacMap dumps to the report.
	Verbose bool

	// JSONPath, when set, receives the full result as JSON.
	JSONPath string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	packages     ports.PackageManager
	services     ports.ServiceLinkScanner
	scanner      *pipeline.Scanner
	classifier   *pipeline.Classifier
	interpreter  *orphan.InterpreterCheck
	progress     ports.Progress
	reporter     ports.Reporter
	store        ports.ReportStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	packages ports.PackageManager,
	services ports.ServiceLinkScanner,
	scanner *pipeline.Scanner,
	classifier *pipeline.Classifier,
	interpreterCheck *orphan.InterpreterCheck,
	progress ports.Progress,
	reporter ports.Reporter,
	store ports.ReportStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		packages:     packages,
		services:     services,
		scanner:      scanner,
		classifier:   classifier,
		interpreter:  interpreterCheck,
		progress:     progress,
		reporter:     reporter,
		store:        store,
		logger:       logger,
	}
}

// Run audits the installation and prints the report.
//
// Only configuration, foreign-package enumeration, service-link enumeration,
// cancellation and the optional JSON export are fatal. Everything else is
// logged and the affected item is skipped.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.AuditResult, error) {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Enumerate the work
	pkgs, err := a.packages.ForeignPackages(ctx)
	if err != nil {
		return nil, errors.Join(domain.ErrForeignPackagesUnavailable, err)
	}

	links, err := a.services.EnabledLinks(cfg.UnitDirs)
	if err != nil {
		return nil, errors.Join(domain.ErrServiceLinksUnavailable, err)
	}

	// 3. Check interpreter library directories in the background
	orphansCh := make(chan []domain.InterpreterOrphan, 1)
	go func() {
		orphansCh <- a.interpreter.Find(ctx, cfg.Interpreter)
	}()

	a.progress.Start(len(pkgs) + len(links))

	// 4. Scan packages while checking service links on this goroutine
	var deps []domain.MissingDep
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var scanErr error
		deps, scanErr = a.scanner.Scan(gctx, pkgs, pipeline.Options{
			Workers:   cfg.Workers,
			Blacklist: cfg.Blacklist,
		})
		return scanErr
	})

	broken := a.brokenLinks(links)

	err = g.Wait()
	a.progress.Finish()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan packages")
	}

	// 5. Classify and report
	report := a.classifier.Classify(ctx, deps)
	a.reporter.Summary(report, opts.Verbose)

	orphans := <-orphansCh
	a.reporter.Interpreter(orphans)
	a.reporter.ServiceLinks(broken)

	result := &domain.AuditResult{
		Report:             report,
		InterpreterOrphans: orphans,
		BrokenServiceLinks: broken,
	}

	// 6. Export
	if opts.JSONPath != "" {
		if err := a.store.Save(opts.JSONPath, result); err != nil {
			return result, zerr.Wrap(err, "failed to export audit result")
		}
	}

	return result, nil
}

func (a *App) brokenLinks(links []string) []string {
	var broken []string
	for _, link := range links {
		isBroken, err := a.services.IsBroken(link)
		if err != nil {
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to check service link"), "link", link))
		} else if isBroken {
			broken = append(broken, link)
		}
		a.progress.Inc(link)
	}
	return broken
}
