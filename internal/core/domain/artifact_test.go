package domain_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pacaudit/internal/core/domain"
)

func TestIsTopLevelSharedObject(t *testing.T) {
	assert.True(t, domain.IsTopLevelSharedObject("/usr/lib/libdemo.so"))
	assert.False(t, domain.IsTopLevelSharedObject("/usr/lib/libdemo.so.1"))
	assert.False(t, domain.IsTopLevelSharedObject("/usr/lib/demo/libdemo.so"))
	assert.False(t, domain.IsTopLevelSharedObject("/lib/libdemo.so"))
}

func TestIsArtifact(t *testing.T) {
	tests := []struct {
		name string
		path string
		mode fs.FileMode
		want bool
	}{
		{"owner executable", "/usr/bin/demo", 0o744, true},
		{"other executable", "/usr/bin/demo", 0o641, true},
		{"plain file", "/usr/share/doc/demo", 0o644, false},
		{"shared object without exec bit", "/usr/lib/libdemo.so", 0o644, true},
		{"nested shared object", "/usr/lib/demo/plugin.so", 0o644, false},
		{"directory", "/usr/lib/demo", fs.ModeDir | 0o755, false},
		{"symlink", "/usr/bin/demo", fs.ModeSymlink | 0o777, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsArtifact(tt.path, tt.mode))
		})
	}
}

func TestDropBlacklisted(t *testing.T) {
	paths := []string{
		"/opt/demo/bin/demo",
		"/usr/bin/demo",
		"/usr/share/demo/helper",
		"/usr/lib/libdemo.so",
		"/optional/bin/x",
	}

	got := domain.DropBlacklisted(paths, domain.DefaultBlacklist)

	assert.Equal(t, []string{"/usr/bin/demo", "/usr/lib/libdemo.so", "/optional/bin/x"}, got)
	assert.True(t, domain.IsBlacklisted("/opt/demo/bin/demo", domain.DefaultBlacklist))
	assert.Empty(t, domain.DropBlacklisted([]string{"/opt/a"}, domain.DefaultBlacklist))
}
