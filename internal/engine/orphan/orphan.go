// Package orphan finds packages stranded in library directories of interpreter
// versions other than the installed one.
package orphan

import (
	"context"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

// InterpreterCheck implements the interpreter-version check.
type InterpreterCheck struct {
	packages ports.PackageManager
	resolver ports.PathResolver
	logger   ports.Logger
}

// NewInterpreterCheck creates a new InterpreterCheck.
func NewInterpreterCheck(packages ports.PackageManager, resolver ports.PathResolver, logger ports.Logger) *InterpreterCheck {
	return &InterpreterCheck{
		packages: packages,
		resolver: resolver,
		logger:   logger,
	}
}

// Find returns the (package, directory) pairs for every library directory of
// the installed major version that is not the current minor's. Failures are
// logged and yield an empty result.
func (p *InterpreterCheck) Find(ctx context.Context, cfg domain.InterpreterConfig) []domain.InterpreterOrphan {
	orphans, err := p.find(ctx, cfg)
	if err != nil {
		p.logger.Error(err)
		return nil
	}
	return orphans
}

func (p *InterpreterCheck) find(ctx context.Context, cfg domain.InterpreterConfig) ([]domain.InterpreterOrphan, error) {
	raw, err := p.packages.Version(ctx, cfg.Package)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get interpreter version"), "package", cfg.Package)
	}
	version, err := domain.ParseInterpreterVersion(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get interpreter version"), "package", cfg.Package)
	}

	current := version.LibDir(cfg)
	dirs, err := p.resolver.Glob(version.LibDirPattern(cfg))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list interpreter packages")
	}

	var orphans []domain.InterpreterOrphan
	seen := make(map[domain.InterpreterOrphan]struct{})
	for _, dir := range dirs {
		if dir == current {
			continue
		}

		owners, err := p.packages.Owners(ctx, dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list interpreter packages"), "dir", dir)
		}
		for _, pkg := range owners {
			orphan := domain.InterpreterOrphan{Package: pkg, Dir: dir}
			if _, dup := seen[orphan]; dup {
				continue
			}
			seen[orphan] = struct{}{}
			orphans = append(orphans, orphan)
		}
	}
	return orphans, nil
}
