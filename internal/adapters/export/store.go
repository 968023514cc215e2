// Package export writes audit results as JSON documents.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using flat JSON files.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save writes res to path as indented JSON.
func (s *Store) Save(path string, res *domain.AuditResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal audit result")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for audit result"), "dir", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write audit result"), "path", path)
	}

	return nil
}
