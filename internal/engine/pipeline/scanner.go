// Package pipeline runs the concurrent artifact scan and the classification
// of the missing dependencies it finds.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tunes one Scan.
type Options struct {
	// Workers bounds both worker pools. Zero means the usable core count.
	Workers int

	// Blacklist holds path prefixes whose artifacts are skipped.
	Blacklist []string
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Scanner enumerates the artifacts of packages and extracts their missing dependencies.
type Scanner struct {
	packages  ports.PackageManager
	artifacts ports.ArtifactFilter
	inspector ports.LinkInspector
	progress  ports.Progress
	logger    ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(
	packages ports.PackageManager,
	artifacts ports.ArtifactFilter,
	inspector ports.LinkInspector,
	progress ports.Progress,
	logger ports.Logger,
) *Scanner {
	return &Scanner{
		packages:  packages,
		artifacts: artifacts,
		inspector: inspector,
		progress:  progress,
		logger:    logger,
	}
}

// Scan runs the enumeration pool and the extraction pool over pkgs and
// returns every missing dependency in arrival order.
//
// The progress indicator advances exactly once per package. Failures local to
// a package or an artifact are logged and skipped; only cancellation of ctx
// ends the scan early.
func (s *Scanner) Scan(ctx context.Context, pkgs []string, opts Options) ([]domain.MissingDep, error) {
	workers := opts.workers()

	pkgCh := make(chan string, len(pkgs))
	for _, pkg := range pkgs {
		pkgCh <- pkg
	}
	close(pkgCh)

	workCh := make(chan domain.ExecFileWork, workers*4)
	depCh := make(chan domain.MissingDep, workers*4)

	g, gctx := errgroup.WithContext(ctx)

	var enumerators, extractors sync.WaitGroup
	for range min(workers, len(pkgs)) {
		enumerators.Add(1)
		g.Go(func() error {
			defer enumerators.Done()
			return s.enumerate(gctx, pkgCh, workCh, opts.Blacklist)
		})
	}
	for range workers {
		extractors.Add(1)
		g.Go(func() error {
			defer extractors.Done()
			return s.extract(gctx, workCh, depCh)
		})
	}

	go func() {
		enumerators.Wait()
		close(workCh)
		extractors.Wait()
		close(depCh)
	}()

	var deps []domain.MissingDep
	for dep := range depCh {
		deps = append(deps, dep)
	}

	if err := g.Wait(); err != nil {
		return deps, zerr.Wrap(err, "scan interrupted")
	}
	return deps, nil
}

// enumerate turns packages into artifact work items.
func (s *Scanner) enumerate(ctx context.Context, in <-chan string, out chan<- domain.ExecFileWork, blacklist []string) error {
	for pkg := range in {
		if err := ctx.Err(); err != nil {
			return err
		}

		files, err := s.packages.Files(ctx, pkg)
		if err != nil {
			s.logger.Error(zerr.With(zerr.Wrap(err, "failed to list package files"), "package", pkg))
			s.progress.Inc(pkg)
			continue
		}

		artifacts := s.artifacts.Filter(domain.DropBlacklisted(files, blacklist))
		artifacts = domain.DropBlacklisted(artifacts, blacklist)
		if len(artifacts) == 0 {
			s.progress.Inc(pkg)
			continue
		}

		name := domain.NewInternedString(pkg)
		for i, path := range artifacts {
			work := domain.ExecFileWork{
				Package: name,
				Path:    domain.NewInternedString(path),
				Last:    i == len(artifacts)-1,
			}
			select {
			case out <- work:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// extract turns artifact work items into missing-dependency tuples.
func (s *Scanner) extract(ctx context.Context, in <-chan domain.ExecFileWork, out chan<- domain.MissingDep) error {
	for work := range in {
		sonames, err := s.inspector.MissingLibraries(ctx, work.Path.String())
		if err != nil {
			s.logger.Error(zerr.With(zerr.Wrap(err, "failed to inspect artifact"), "package", work.Package.String()))
		}

		for _, soname := range sonames {
			dep := domain.MissingDep{
				Package:   work.Package,
				Path:      work.Path,
				Soname:    soname,
				Providers: s.providers(ctx, soname),
			}
			select {
			case out <- dep:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if work.Last {
			s.progress.Inc(work.Package.String())
		}
	}
	return nil
}

func (s *Scanner) providers(ctx context.Context, soname string) []string {
	key := domain.ProviderLookupKey(soname)
	owners, err := s.packages.Owners(ctx, key)
	if err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to look up providers"), "soname", soname))
		return domain.ProvidersOrUnknown(nil)
	}
	return domain.ProvidersOrUnknown(owners)
}
