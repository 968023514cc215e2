package domain

import "strings"

// UnknownProvider stands in for the provider list when the owner query found nothing.
const UnknownProvider = "?"

// ExecFileWork is one artifact of a foreign package queued for dependency extraction.
type ExecFileWork struct {
	// Package is the foreign package owning the artifact.
	Package InternedString

	// Path is the canonicalized artifact path.
	Path InternedString

	// Last is true for the final artifact emitted for Package.
	// It is used to advance the progress indicator exactly once per package.
	Last bool
}

// MissingDep is an unresolved soname found for one artifact.
type MissingDep struct {
	Package   InternedString `json:"package"`
	Path      InternedString `json:"path"`
	Soname    string         `json:"soname"`
	Providers []string       `json:"providers"`
}

// ProviderLookupKey derives the owner-query key for a soname: the basename,
// truncated right after the first ".so" so that version suffixes are dropped.
// "libfoo.so.3" becomes "libfoo.so".
func ProviderLookupKey(soname string) string {
	base := soname
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, ".so"); i >= 0 {
		return base[:i+len(".so")]
	}
	return base
}

// ProvidersOrUnknown returns providers, or the single UnknownProvider entry when empty.
func ProvidersOrUnknown(providers []string) []string {
	if len(providers) == 0 {
		return []string{UnknownProvider}
	}
	return providers
}
