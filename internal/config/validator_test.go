package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/testutil"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "empty", cfg: &Config{}},
		{name: "defaults", cfg: DefaultConfig()},
		{name: "bad output", cfg: &Config{Output: "xml"}, wantErr: true},
		{name: "bad manifest name", cfg: &Config{Manifest: "manifest.xml"}, wantErr: true},
		{name: "bad preferences extension", cfg: &Config{Preferences: "prefs.ini"}, wantErr: true},
		{name: "toml preferences", cfg: &Config{Preferences: "winpack.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "ok.yaml", "projectDir: platforms/windows\noutput: yaml\nlog:\n  timestamps: false\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "empty.yaml", "")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "unknown.yaml", "registry: example.com\n")
		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("wrong type", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "type.yaml", "log:\n  timestamps: sometimes\n")
		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "broken.yaml", "output: [\n")
		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	})
}
