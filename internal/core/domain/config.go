package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// InterpreterConfig locates the versioned interpreter library directories.
type InterpreterConfig struct {
	// Package is the interpreter package queried for its version (e.g. "python").
	Package string

	// LibRoot is the directory holding the versioned trees (e.g. "/usr/lib").
	LibRoot string

	// DirPrefix precedes the version in a tree name (e.g. "python").
	DirPrefix string
}

// Config holds the tunable settings of an audit run.
type Config struct {
	// Blacklist holds path prefixes whose artifacts are never analyzed.
	Blacklist []string

	// UnitDirs are the service-manager directories scanned for enabled links.
	UnitDirs []string

	Interpreter InterpreterConfig

	// Workers bounds the worker pools; zero means the usable core count.
	Workers int
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Blacklist: slices.Clone(DefaultBlacklist),
		UnitDirs:  []string{"/etc/systemd/system", "/etc/systemd/user"},
		Interpreter: InterpreterConfig{
			Package:   "python",
			LibRoot:   "/usr/lib",
			DirPrefix: "python",
		},
	}
}

// Validate checks the settings for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return zerr.With(zerr.Wrap(ErrConfigInvalid, "workers must not be negative"), "workers", c.Workers)
	}
	for _, prefix := range c.Blacklist {
		if !filepath.IsAbs(prefix) {
			return zerr.With(zerr.Wrap(ErrConfigInvalid, "blacklist entries must be absolute"), "blacklist_entry", prefix)
		}
	}
	if c.Interpreter.Package == "" {
		return zerr.Wrap(ErrConfigInvalid, "interpreter package is empty")
	}
	return nil
}
