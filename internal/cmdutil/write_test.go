package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/testutil"
	"github.com/winpack/cli/internal/uap"
)

func TestWriteManifests(t *testing.T) {
	path := testutil.WriteManifest(t, t.TempDir(), "package.windows10.appxmanifest")
	original := testutil.ReadFile(t, path)

	t.Run("dry run leaves file untouched", func(t *testing.T) {
		m, err := manifest.Load(path)
		require.NoError(t, err)

		results, err := WriteManifests([]*manifest.Manifest{m}, true, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Changed, "capability normalization changes the sample")
		assert.Contains(t, results[0].Diff, "+++ b/"+path)
		assert.Equal(t, original, testutil.ReadFile(t, path))
	})

	t.Run("write then unchanged", func(t *testing.T) {
		m, err := manifest.Load(path)
		require.NoError(t, err)

		results, err := WriteManifests([]*manifest.Manifest{m}, false, nil)
		require.NoError(t, err)
		assert.True(t, results[0].Changed)
		assert.Empty(t, results[0].Diff)
		assert.NotEqual(t, original, testutil.ReadFile(t, path))

		reloaded, err := manifest.Load(path)
		require.NoError(t, err)
		results, err = WriteManifests([]*manifest.Manifest{reloaded}, false, nil)
		require.NoError(t, err)
		assert.False(t, results[0].Changed)
	})
}

func TestPrintWriteResults(t *testing.T) {
	var buf bytes.Buffer
	PrintWriteResults(&buf, []WriteResult{
		{Path: "a.appxmanifest", Changed: true},
		{Path: "b.appxmanifest"},
	}, false)

	out := buf.String()
	assert.Contains(t, out, "a.appxmanifest")
	assert.Contains(t, out, "written")
	assert.Contains(t, out, "unchanged")
	assert.Contains(t, out, "1 changed, 1 unchanged")

	buf.Reset()
	PrintWriteResults(&buf, []WriteResult{{Path: "a", Changed: true, Diff: "--- a\n+++ b\n"}}, true)
	assert.Contains(t, buf.String(), "+++ b")
	assert.Contains(t, buf.String(), "Dry run: 1 changed")
}

func TestResolveRanges(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.xml", `<widget>
  <preference name="Windows.Universal-MinVersion" value="10.0.10586.0"/>
  <platform name="windows">
    <preference name="Windows.Desktop-MaxVersionTested" value="10.0.14393.0"/>
  </platform>
</widget>`)

	ranges, err := ResolveRanges(path)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, uap.UniversalFamily, ranges[0].Name)
	assert.Equal(t, "10.0.10586.0", ranges[0].MaxVersionTested.String())
	assert.Equal(t, "Windows.Desktop", ranges[1].Name)

	_, err = ResolveRanges(dir + "/missing.xml")
	assert.Error(t, err)
}

func TestSummaryTables(t *testing.T) {
	m, err := manifest.Parse("x.appxmanifest", []byte(testutil.SampleManifest))
	require.NoError(t, err)
	s, err := m.Summary()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s, "table"))
	out := buf.String()
	assert.Contains(t, out, "org.example.app")
	assert.Contains(t, out, "Windows.Universal")
	assert.Contains(t, out, "picturesLibrary")
	assert.Contains(t, out, "yes")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, s, "yaml"))
	assert.Contains(t, buf.String(), "minVersion: 10.0.10240.0")
}
