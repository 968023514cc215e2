package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pacaudit/internal/core/domain"
)

func TestVerboseRequested(t *testing.T) {
	assert.True(t, domain.VerboseRequested([]string{"-v"}))
	assert.True(t, domain.VerboseRequested([]string{"--config", "x.yaml", "--verbose"}))
	assert.True(t, domain.VerboseRequested([]string{"-vvv"}))
	assert.False(t, domain.VerboseRequested(nil))
	assert.False(t, domain.VerboseRequested([]string{"--json", "out.json", "v"}))
}

func TestCommandOutput_Lines(t *testing.T) {
	out := domain.CommandOutput{Stdout: []byte("a\nb\n")}
	assert.Equal(t, []string{"a", "b"}, out.Lines())
	assert.True(t, out.Success())

	empty := domain.CommandOutput{ExitCode: 1}
	assert.Nil(t, empty.Lines())
	assert.False(t, empty.Success())
}
