package ports

import "context"

// PackageManager queries the system package database.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// ForeignPackages lists installed packages not found in any sync repository.
	ForeignPackages(ctx context.Context) ([]string, error)

	// Files lists every path owned by pkg, in database order.
	Files(ctx context.Context, pkg string) ([]string, error)

	// Version returns the installed version string of pkg.
	Version(ctx context.Context, pkg string) (string, error)

	// Owners returns the sync-repository packages providing a file named by path.
	// An empty result means no provider is known.
	Owners(ctx context.Context, path string) ([]string, error)
}
