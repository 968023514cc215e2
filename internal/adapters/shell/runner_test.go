package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacaudit/internal/adapters/shell"
)

func TestRunner_Run_CapturesOutput(t *testing.T) {
	runner := shell.NewRunner()

	out, err := runner.Run(context.Background(), "sh", "-c", "echo line1; echo line2; echo oops >&2")
	require.NoError(t, err)

	assert.True(t, out.Success())
	assert.Equal(t, []string{"line1", "line2"}, out.Lines())
	assert.Equal(t, "oops\n", string(out.Stderr))
}

func TestRunner_Run_NonZeroExitIsNotAnError(t *testing.T) {
	runner := shell.NewRunner()

	out, err := runner.Run(context.Background(), "sh", "-c", "echo partial; exit 3")
	require.NoError(t, err)

	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, []string{"partial"}, out.Lines())
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	runner := shell.NewRunner()

	_, err := runner.Run(context.Background(), "definitely-not-a-real-tool-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestRunner_Run_LocaleOverride(t *testing.T) {
	runner := shell.NewRunner(shell.DefaultEnvironment...)

	out, err := runner.Run(context.Background(), "sh", "-c", "echo $LC_ALL")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, out.Lines())
}

func TestRunner_Run_PathOverride(t *testing.T) {
	binDir := t.TempDir()
	script := filepath.Join(binDir, "fake-ldd")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho from-override\n"), 0o700))

	runner := shell.NewRunner("PATH=" + binDir)

	out, err := runner.Run(context.Background(), "fake-ldd")
	require.NoError(t, err)
	assert.Equal(t, []string{"from-override"}, out.Lines())
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	runner := shell.NewRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "LANG=de_DE.UTF-8", "HOME=/root", "broken"},
		[]string{"PATH=/opt/tools", "LANG=C"},
	)

	assert.ElementsMatch(t, []string{"PATH=/opt/tools:/usr/bin", "LANG=C", "HOME=/root"}, env)
}
