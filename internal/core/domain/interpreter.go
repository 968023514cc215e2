package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// InterpreterVersion is an installed interpreter package version of the form
// MAJOR.MINOR.RELEASE-PKGREL.
type InterpreterVersion struct {
	Major   uint8
	Minor   uint8
	Release uint8
	Pkgrel  uint8
}

// ParseInterpreterVersion parses a version string such as "3.12.1-1".
func ParseInterpreterVersion(s string) (InterpreterVersion, error) {
	var v InterpreterVersion

	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	if len(parts) != 3 {
		return v, zerr.With(zerr.Wrap(ErrMalformedVersion, "expected MAJOR.MINOR.RELEASE-PKGREL"), "version", s)
	}
	release, pkgrel, ok := strings.Cut(parts[2], "-")
	if !ok {
		return v, zerr.With(zerr.Wrap(ErrMalformedVersion, "missing package release"), "version", s)
	}

	fields := []struct {
		dst  *uint8
		src  string
		name string
	}{
		{&v.Major, parts[0], "major"},
		{&v.Minor, parts[1], "minor"},
		{&v.Release, release, "release"},
		{&v.Pkgrel, pkgrel, "pkgrel"},
	}
	for _, f := range fields {
		n, err := strconv.ParseUint(f.src, 10, 8)
		if err != nil {
			wrapped := zerr.With(zerr.Wrap(ErrMalformedVersion, "invalid "+f.name+" component"), "version", s)
			return InterpreterVersion{}, zerr.With(wrapped, "reason", err.Error())
		}
		*f.dst = uint8(n)
	}

	return v, nil
}

// String formats the version as MAJOR.MINOR.RELEASE-PKGREL.
func (v InterpreterVersion) String() string {
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Release, v.Pkgrel)
}

// LibDir returns the library directory of this interpreter minor version,
// e.g. "/usr/lib/python3.12".
func (v InterpreterVersion) LibDir(cfg InterpreterConfig) string {
	return filepath.Join(cfg.LibRoot, fmt.Sprintf("%s%d.%d", cfg.DirPrefix, v.Major, v.Minor))
}

// LibDirPattern returns the glob matching every library directory sharing the
// major version, e.g. "/usr/lib/python3*".
func (v InterpreterVersion) LibDirPattern(cfg InterpreterConfig) string {
	return filepath.Join(cfg.LibRoot, fmt.Sprintf("%s%d*", cfg.DirPrefix, v.Major))
}

// InterpreterOrphan is a package that still owns files in a stale
// interpreter library directory.
type InterpreterOrphan struct {
	Package string `json:"package"`
	Dir     string `json:"dir"`
}
