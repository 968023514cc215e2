// Package shell provides the external tool runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// DefaultEnvironment pins the tool locale so their output can be parsed.
var DefaultEnvironment = []string{"LANG=C", "LC_ALL=C"}

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	env []string
}

// NewRunner creates a Runner whose commands see the system environment
// overridden by env ("KEY=VALUE" entries).
func NewRunner(env ...string) *Runner {
	return &Runner{
		env: resolveEnvironment(os.Environ(), env),
	}
}

// Run executes name with args and captures stdout, stderr and the exit code.
//
// The environment is merged with the following priority (low to high):
// 1. os.Environ() (System base)
// 2. the overrides given to NewRunner
//
// Special handling is applied to PATH: override paths are prepended to System paths.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (domain.CommandOutput, error) {
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, r.env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // fixed tool names

	// exec.CommandContext sets Args[0] to the executable path.
	// Preserve the original name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = r.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := domain.CommandOutput{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		out.ExitCode = -1
		err = zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
		return out, zerr.With(err, "args", strings.Join(args, " "))
	}

	return out, nil
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for _, entry := range overrides {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
