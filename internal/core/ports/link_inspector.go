package ports

import "context"

// LinkInspector inspects the dynamic-linking metadata of binaries.
//
//go:generate mockgen -source=link_inspector.go -destination=mocks/mock_link_inspector.go -package=mocks
type LinkInspector interface {
	// MissingLibraries returns the sonames the dynamic linker cannot resolve for path,
	// directly or through any dependency.
	MissingLibraries(ctx context.Context, path string) ([]string, error)

	// NeededLibraries returns the sonames listed in the dynamic section of path.
	NeededLibraries(ctx context.Context, path string) ([]string, error)
}
