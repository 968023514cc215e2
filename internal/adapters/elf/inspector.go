// Package elf inspects dynamic-linking metadata through ldd and patchelf.
package elf

import (
	"context"
	"strings"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LinkInspector = (*Inspector)(nil)

const (
	// LinkDiagnosticTool lists every library the dynamic linker would load.
	LinkDiagnosticTool = "ldd"
	// MetadataTool prints the dynamic section entries of an ELF file.
	MetadataTool = "patchelf"

	notFoundSuffix = "=> not found"
)

// Inspector implements ports.LinkInspector.
type Inspector struct {
	runner ports.CommandRunner
}

// NewInspector creates a new Inspector.
func NewInspector(runner ports.CommandRunner) *Inspector {
	return &Inspector{runner: runner}
}

// MissingLibraries returns the sonames ldd cannot resolve for path.
// When ldd exits unsuccessfully (e.g. path is not a dynamic executable),
// no sonames are returned.
func (i *Inspector) MissingLibraries(ctx context.Context, path string) ([]string, error) {
	out, err := i.runner.Run(ctx, LinkDiagnosticTool, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to run link diagnostic"), "path", path)
	}
	if !out.Success() {
		return nil, nil
	}
	return ParseMissing(out.Lines()), nil
}

// NeededLibraries returns the DT_NEEDED entries of path.
func (i *Inspector) NeededLibraries(ctx context.Context, path string) ([]string, error) {
	out, err := i.runner.Run(ctx, MetadataTool, "--print-needed", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to run elf metadata tool"), "path", path)
	}
	if !out.Success() {
		err := zerr.With(zerr.Wrap(domain.ErrToolFailed, "elf metadata tool exited unsuccessfully"), "tool", MetadataTool)
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "exit_code", out.ExitCode)
	}

	lines := out.Lines()
	needed := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			needed = append(needed, line)
		}
	}
	return needed, nil
}

// ParseMissing extracts the unresolved sonames from ldd output lines, in order.
func ParseMissing(lines []string) []string {
	var missing []string
	for _, line := range lines {
		if !strings.HasSuffix(line, notFoundSuffix) {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			missing = append(missing, fields[0])
		}
	}
	return missing
}
