package ports

import "go.trai.ch/pacaudit/internal/core/domain"

// Reporter renders audit findings for a human reader.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// MissingDependency prints one line per unresolved soname as it is classified.
	MissingDependency(dep domain.MissingDep)

	// Summary prints the aggregated broken-package report.
	Summary(report *domain.Report, verbose bool)

	// Interpreter prints packages left behind in stale interpreter directories.
	Interpreter(orphans []domain.InterpreterOrphan)

	// ServiceLinks prints broken enabled-unit links.
	ServiceLinks(links []string)
}
