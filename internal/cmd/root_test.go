package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/testutil"
)

// isolate points HOME and every WINPACK_* variable at an empty state.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, env := range []string{"WINPACK_CONFIG", envProjectDir, envManifest, envPreferences, envOutput} {
		t.Setenv(env, "")
	}
	return home
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "winpack", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	for _, name := range []string{"config", "project-dir", "manifest", "output", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag %s", name)
	}

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"manifest", "config", "versions", "preference", "version"})
}

func TestRoot_ProjectDirFlag(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "package.windows10.appxmanifest")

	out, err := executeRoot(t, "manifest", "show", "--project-dir", dir, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "org.example.app"`)
}

func TestRoot_EnvOverridesConfig(t *testing.T) {
	home := isolate(t)
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "app.appxmanifest")
	testutil.WriteFile(t, home, ".winpack/config.yaml", "projectDir: /nonexistent\nmanifest: app.appxmanifest\noutput: yaml\n")
	t.Setenv(envProjectDir, dir)

	out, err := executeRoot(t, "manifest", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "name: org.example.app")
}

func TestRoot_UnknownOutputFormat(t *testing.T) {
	isolate(t)

	_, err := executeRoot(t, "versions", "-o", "xml")
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
}

func TestRoot_ConfigFlag(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	prefsPath := testutil.WriteFile(t, dir, "prefs.yaml", `preferences:
- name: Windows.Universal-MinVersion
  value: 10.0.14393.0
`)
	configPath := testutil.WriteFile(t, dir, "winpack.yaml", "preferences: "+prefsPath+"\noutput: json\n")

	out, err := executeRoot(t, "versions", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"minVersion": "10.0.14393.0"`)
}
