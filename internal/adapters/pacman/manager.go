// Package pacman implements the package database adapter on top of the pacman CLI.
package pacman

import (
	"context"
	"strings"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.PackageManager = (*Manager)(nil)

// Binary is the package manager executable.
const Binary = "pacman"

// Manager implements ports.PackageManager by invoking pacman.
type Manager struct {
	runner ports.CommandRunner
	owners *ownerCache
	group  singleflight.Group
}

// NewManager creates a new Manager.
func NewManager(runner ports.CommandRunner) *Manager {
	return &Manager{
		runner: runner,
		owners: newOwnerCache(),
	}
}

// ForeignPackages lists installed packages not found in any sync database.
//
// pacman exits non-zero when the list is empty, so the exit status is ignored.
func (m *Manager) ForeignPackages(ctx context.Context) ([]string, error) {
	out, err := m.runner.Run(ctx, Binary, "-Qqm")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query foreign packages")
	}
	return nonEmpty(out.Lines()), nil
}

// Files lists the paths owned by pkg in database order.
func (m *Manager) Files(ctx context.Context, pkg string) ([]string, error) {
	out, err := m.runner.Run(ctx, Binary, "-Ql", pkg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list package files"), "package", pkg)
	}
	if !out.Success() {
		return nil, queryFailed(out, "package", pkg)
	}

	lines := out.Lines()
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		_, path, ok := strings.Cut(line, " ")
		if !ok || path == "" {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// Version returns the installed version string of pkg.
func (m *Manager) Version(ctx context.Context, pkg string) (string, error) {
	out, err := m.runner.Run(ctx, Binary, "-Qi", pkg)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to query package info"), "package", pkg)
	}
	if !out.Success() {
		return "", queryFailed(out, "package", pkg)
	}

	for _, line := range out.Lines() {
		if !strings.HasPrefix(line, "Version") {
			continue
		}
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			break
		}
		return strings.TrimSpace(value), nil
	}
	return "", zerr.With(zerr.Wrap(ErrVersionMissing, "failed to read package version"), "package", pkg)
}

// Owners returns the sync-database packages providing a file named path.
// Results are memoized for the lifetime of the Manager and concurrent
// lookups of the same path share one pacman invocation.
func (m *Manager) Owners(ctx context.Context, path string) ([]string, error) {
	if owners, ok := m.owners.get(path); ok {
		return owners, nil
	}

	v, err, _ := m.group.Do(path, func() (any, error) {
		owners, err := m.queryOwners(ctx, path)
		if err != nil {
			return nil, err
		}
		m.owners.put(path, owners)
		return owners, nil
	})
	if err != nil {
		return nil, err
	}
	owners, _ := v.([]string)
	return owners, nil
}

func (m *Manager) queryOwners(ctx context.Context, path string) ([]string, error) {
	out, err := m.runner.Run(ctx, Binary, "-Fq", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query file owners"), "path", path)
	}

	// pacman exits non-zero when nothing owns the path.
	var owners []string
	for _, line := range out.Lines() {
		_, pkg, ok := strings.Cut(strings.TrimSpace(line), "/")
		if !ok || pkg == "" {
			continue
		}
		owners = append(owners, pkg)
	}
	return owners, nil
}

// ErrVersionMissing is returned when package info has no Version field.
var ErrVersionMissing = zerr.New("package info has no version field")

func queryFailed(out domain.CommandOutput, key, value string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageQueryFailed, "pacman exited unsuccessfully"), key, value)
	err = zerr.With(err, "exit_code", out.ExitCode)
	if stderr := strings.TrimSpace(string(out.Stderr)); stderr != "" {
		err = zerr.With(err, "stderr", stderr)
	}
	return err
}

func nonEmpty(lines []string) []string {
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
