// Package fs provides file system adapters for filtering artifacts and expanding globs.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
)

var _ ports.ArtifactFilter = (*Artifacts)(nil)

// Artifacts implements ports.ArtifactFilter on the local file system.
type Artifacts struct{}

// NewArtifacts creates a new Artifacts filter.
func NewArtifacts() *Artifacts {
	return &Artifacts{}
}

// Filter returns the canonicalized paths that name artifacts, in input order.
//
// Each path is resolved one symlink hop before it is stat'd. Paths whose
// target is missing, not a regular file, or neither executable nor a
// top-level shared object are dropped.
func (a *Artifacts) Filter(paths []string) []string {
	var kept []string
	for _, path := range paths {
		resolved := Canonicalize(path)

		info, err := os.Stat(resolved)
		if err != nil {
			continue
		}
		if domain.IsArtifact(resolved, info.Mode()) {
			kept = append(kept, resolved)
		}
	}
	return kept
}

// Canonicalize follows path through at most one symlink. A relative link
// target is resolved against the directory holding the link. When path is
// not a link, or cannot be read, it is returned unchanged.
func Canonicalize(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}
