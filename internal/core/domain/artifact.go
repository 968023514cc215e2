package domain

import (
	"io/fs"
	"strings"
)

// DefaultBlacklist lists directories known to host bundled-library layouts
// whose unresolved-dependency reports are not informative.
var DefaultBlacklist = []string{"/opt/", "/usr/share/"}

// IsTopLevelSharedObject reports whether path names an unversioned shared
// object directly inside a top-level library directory, e.g. "/usr/lib/libdemo.so".
func IsTopLevelSharedObject(path string) bool {
	return strings.Count(path, "/") == 3 && strings.HasSuffix(path, ".so")
}

// IsArtifact reports whether a file with the given mode at path is an artifact:
// a regular file that is executable by any class or is a top-level shared object.
func IsArtifact(path string, mode fs.FileMode) bool {
	if !mode.IsRegular() {
		return false
	}
	return mode.Perm()&0o111 != 0 || IsTopLevelSharedObject(path)
}

// IsBlacklisted reports whether path starts with any of the prefixes.
func IsBlacklisted(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// DropBlacklisted returns the paths not starting with any of the prefixes, in order.
func DropBlacklisted(paths, prefixes []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !IsBlacklisted(p, prefixes) {
			kept = append(kept, p)
		}
	}
	return kept
}
