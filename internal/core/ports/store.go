package ports

import "go.trai.ch/pacaudit/internal/core/domain"

// ReportStore persists audit results.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Save writes res to path, creating parent directories as needed.
	Save(path string, res *domain.AuditResult) error
}
