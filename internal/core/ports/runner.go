package ports

import (
	"context"

	"go.trai.ch/pacaudit/internal/core/domain"
)

// CommandRunner runs external tools and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args and returns its captured output.
	//
	// A non-zero exit status is reported through CommandOutput.ExitCode, not as an error.
	// An error is returned only when the process could not be started.
	Run(ctx context.Context, name string, args ...string) (domain.CommandOutput, error)
}
