package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winpack/cli/internal/cmdtypes"
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/testutil"
)

const platformConfigXML = `<?xml version="1.0"?>
<widget>
  <preference name="WindowsStoreIdentityName" value="Example.Global" />
  <platform name="windows">
    <preference name="WindowsStoreIdentityName" value="Example.Windows" />
  </platform>
</widget>
`

func TestNewPreferenceCmd(t *testing.T) {
	c := NewPreferenceCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "preference NAME", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotNil(t, c.Flags().Lookup("preferences"))
}

func TestPreference(t *testing.T) {
	dir := t.TempDir()
	prefsPath := testutil.WriteFile(t, dir, "config.xml", platformConfigXML)

	tests := []struct {
		name   string
		output string
		want   string
	}{
		{name: "table", output: "table", want: "Example.Windows\n"},
		{name: "json", output: "json", want: `"value": "Example.Windows"`},
		{name: "yaml", output: "yaml", want: "name: WindowsStoreIdentityName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPreferenceCmd(&cmdtypes.GlobalConfig{Preferences: prefsPath, Output: tt.output})
			var out bytes.Buffer
			c.SetOut(&out)
			c.SetErr(&bytes.Buffer{})
			c.SetArgs([]string{"WindowsStoreIdentityName"})

			require.NoError(t, c.Execute())
			assert.Contains(t, out.String(), tt.want)
			assert.NotContains(t, out.String(), "Example.Global")
		})
	}
}

func TestPreference_NotSet(t *testing.T) {
	dir := t.TempDir()
	prefsPath := testutil.WriteFile(t, dir, "config.xml", platformConfigXML)

	c := NewPreferenceCmd(&cmdtypes.GlobalConfig{})
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"Orientation", "--preferences", prefsPath})

	err := c.Execute()
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)
}
