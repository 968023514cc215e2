package domain

import "go.trai.ch/zerr"

var (
	// ErrForeignPackagesUnavailable is returned when the foreign package list cannot be obtained.
	ErrForeignPackagesUnavailable = zerr.New("unable to get list of foreign packages")

	// ErrServiceLinksUnavailable is returned when enabled service links cannot be enumerated.
	ErrServiceLinksUnavailable = zerr.New("unable to list enabled service links")

	// ErrPackageQueryFailed is returned when a package manager query exits unsuccessfully.
	ErrPackageQueryFailed = zerr.New("package query failed")

	// ErrToolFailed is returned when an external analysis tool exits unsuccessfully.
	ErrToolFailed = zerr.New("tool failed")

	// ErrMalformedVersion is returned when a package version cannot be parsed.
	ErrMalformedVersion = zerr.New("malformed package version")

	// ErrConfigInvalid is returned when the configuration file has invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnexpectedLinkTarget is returned when a link resolves to something other than a file.
	ErrUnexpectedLinkTarget = zerr.New("unexpected file type for link target")
)
