package ports

// ArtifactFilter keeps only the paths that are artifacts worth analyzing.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type ArtifactFilter interface {
	// Filter canonicalizes each path and returns the artifacts in input order.
	Filter(paths []string) []string
}

// PathResolver expands glob patterns.
type PathResolver interface {
	// Glob returns the sorted, unique matches of pattern.
	Glob(pattern string) ([]string, error)
}

// ServiceLinkScanner finds enabled service-unit links.
type ServiceLinkScanner interface {
	// EnabledLinks returns the link entries inside every "*.target.*" directory under dirs.
	EnabledLinks(dirs []string) ([]string, error)

	// IsBroken reports whether following link never reaches an existing regular file.
	IsBroken(link string) (bool, error)
}
