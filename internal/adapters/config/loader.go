// Package config provides the configuration loader for pacaudit.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "/etc/pacaudit.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the configuration at path, or DefaultPath when path is empty.
// A missing file yields the defaults.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no configuration at " + path + ", using defaults")
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// Load reads a configuration file from the given path and merges it over the defaults.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Auditfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := merge(domain.DefaultConfig(), &file)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func merge(cfg *domain.Config, file *Auditfile) *domain.Config {
	if file.Blacklist != nil {
		cfg.Blacklist = slices.Clone(*file.Blacklist)
	}
	if len(file.UnitDirs) > 0 {
		cfg.UnitDirs = slices.Clone(file.UnitDirs)
	}
	if in := file.Interpreter; in != nil {
		if in.Package != "" {
			cfg.Interpreter.Package = in.Package
		}
		if in.LibRoot != "" {
			cfg.Interpreter.LibRoot = in.LibRoot
		}
		if in.DirPrefix != "" {
			cfg.Interpreter.DirPrefix = in.DirPrefix
		}
	}
	cfg.Workers = file.Workers
	return cfg
}
