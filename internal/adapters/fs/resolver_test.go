package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/progbuild/internal/adapters/fs"
	"go.trai.ch/progbuild/internal/core/domain"
)

// canonical returns the symlink-free form of path, e.g. for macOS /var -> /private/var temp dirs.
func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestResolver_Resolve(t *testing.T) {
	anchor := canonical(t, t.TempDir())
	program := filepath.Join(anchor, "programs", "fibonacci")
	require.NoError(t, os.MkdirAll(program, 0o750))

	other := canonical(t, t.TempDir())

	tests := []struct {
		name     string
		anchor   string
		location string
		want     string
	}{
		{
			name:     "relative to anchor",
			anchor:   anchor,
			location: "programs/fibonacci",
			want:     program,
		},
		{
			name:     "relative with dot segments",
			anchor:   anchor,
			location: "./programs/../programs/fibonacci/.",
			want:     program,
		},
		{
			name:     "absolute ignores anchor",
			anchor:   other,
			location: program,
			want:     program,
		},
		{
			name:     "absolute without anchor",
			anchor:   "",
			location: program,
			want:     program,
		},
	}

	r := fs.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.anchor, tt.location)
			require.NoError(t, err)
			assert.Equal(t, domain.ProgramDir(tt.want), got)
			assert.True(t, filepath.IsAbs(got.String()))
		})
	}
}

func TestResolver_Resolve_AnchorNotWorkingDirectory(t *testing.T) {
	anchor := canonical(t, t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(anchor, "program"), 0o750))

	cwd := t.TempDir()
	t.Chdir(cwd)

	got, err := fs.NewResolver().Resolve(anchor, "program")
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramDir(filepath.Join(anchor, "program")), got)
}

func TestResolver_Resolve_Symlink(t *testing.T) {
	anchor := canonical(t, t.TempDir())
	target := filepath.Join(anchor, "real")
	require.NoError(t, os.Mkdir(target, 0o750))
	require.NoError(t, os.Symlink(target, filepath.Join(anchor, "link")))

	got, err := fs.NewResolver().Resolve(anchor, "link")
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramDir(target), got)
}

func TestResolver_Resolve_Errors(t *testing.T) {
	anchor := canonical(t, t.TempDir())

	file := filepath.Join(anchor, "Cargo.toml")
	require.NoError(t, os.WriteFile(file, []byte("[package]\n"), 0o600))

	broken := filepath.Join(anchor, "broken")
	require.NoError(t, os.Symlink(filepath.Join(anchor, "missing-target"), broken))

	tests := []struct {
		name     string
		anchor   string
		location string
		wantIs   error
	}{
		{name: "missing relative", anchor: anchor, location: "nope"},
		{name: "missing absolute", anchor: anchor, location: filepath.Join(anchor, "nope")},
		{name: "broken symlink", anchor: anchor, location: "broken"},
		{name: "regular file", anchor: anchor, location: "Cargo.toml", wantIs: domain.ErrNotADirectory},
		{name: "relative without anchor", anchor: "", location: "program", wantIs: domain.ErrAnchorRootUnset},
	}

	r := fs.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.anchor, tt.location)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, domain.ErrResolutionFailed)
			assert.Contains(t, err.Error(), tt.location)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
