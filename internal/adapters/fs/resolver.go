package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob expands pattern into a sorted list of unique matches.
// A pattern matching nothing yields an empty list.
func (r *Resolver) Glob(pattern string) ([]string, error) {
	return r.GlobAll([]string{pattern})
}

// GlobAll expands every pattern and merges the matches into one sorted, unique list.
func (r *Resolver) GlobAll(patterns []string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		for _, match := range matches {
			uniquePaths[match] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}
