package manifest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/testutil"
)

func loadSample(t *testing.T) *Manifest {
	t.Helper()
	m, err := Parse("package.windows10.appxmanifest", []byte(testutil.SampleManifest))
	require.NoError(t, err)
	return m
}

func TestLoad(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		path := testutil.WriteManifest(t, t.TempDir(), "package.windows10.appxmanifest")
		m, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, m.Path())
		assert.Equal(t, RootTag, m.Root().Tag())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.appxmanifest"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	})

	t.Run("wrong root tag", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "bad.appxmanifest", `<widget xmlns:uap="x"/>`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrFormat))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("windows 8.1 manifest", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "old.appxmanifest", testutil.Windows81Manifest)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrUnsupportedVersion))
	})

	t.Run("malformed xml", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "broken.appxmanifest", `<Package a=>`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrFormat))
	})
}

func TestMissingSections(t *testing.T) {
	m, err := Parse("bare.appxmanifest", []byte(`<Package xmlns:uap="x"/>`))
	require.NoError(t, err)

	checks := map[string]func() error{
		"Identity":           func() error { _, err := m.Identity(); return err },
		"Properties":         func() error { _, err := m.Properties(); return err },
		"Application":        func() error { _, err := m.Application(); return err },
		"uap:VisualElements": func() error { _, err := m.VisualElements(); return err },
		"mp:PhoneIdentity":   func() error { _, err := m.PhoneIdentity(); return err },
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			err := check()
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrFormat))
			assert.Contains(t, err.Error(), name)
			assert.Contains(t, err.Error(), "bare.appxmanifest")
		})
	}
}

func TestIdentity(t *testing.T) {
	m := loadSample(t)
	id, err := m.Identity()
	require.NoError(t, err)

	assert.Equal(t, "org.example.app", id.Name())
	assert.Equal(t, "CN=Example", id.Publisher())
	assert.Equal(t, "1.0.0.0", id.Version())
	assert.Same(t, m, id.Manifest())

	id, err = id.SetVersion("1.2")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0.0", id.Version())

	_, err = id.SetVersion("3")
	require.NoError(t, err)
	assert.Equal(t, "3.0.0.0", id.Version())

	for _, bad := range []string{"", "1.2.3.4.5", "1.x"} {
		_, err = id.SetVersion(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, oerrors.ErrValue), bad)
	}
	assert.Equal(t, "3.0.0.0", id.Version(), "failed setters leave the value untouched")

	_, err = id.SetName("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	_, err = id.SetPublisher("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))

	_, err = id.SetPublisher("CN=Other")
	require.NoError(t, err)
	assert.Equal(t, "CN=Other", id.Publisher())
}

func TestPadVersion(t *testing.T) {
	assert.Equal(t, "1.0.0.0", PadVersion("1"))
	assert.Equal(t, "1.2.0.0", PadVersion("1.2"))
	assert.Equal(t, "1.2.3.0", PadVersion("1.2.3"))
	assert.Equal(t, "1.2.3.4", PadVersion("1.2.3.4"))
}

func TestProperties(t *testing.T) {
	m := loadSample(t)
	props, err := m.Properties()
	require.NoError(t, err)

	assert.Equal(t, "Example", props.DisplayName())
	assert.Equal(t, "Example Corp", props.PublisherDisplayName())
	assert.Empty(t, props.Description())

	props.SetDescription("A description")
	assert.Equal(t, "A description", props.Description())
	props.SetDescription("")
	assert.Nil(t, m.Root().Find("./Properties/Description"))

	_, err = props.SetDisplayName("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	_, err = props.SetPublisherDisplayName("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))

	_, err = props.SetPublisherDisplayName("Someone")
	require.NoError(t, err)
	assert.Equal(t, "Someone", props.PublisherDisplayName())
}

func TestApplication(t *testing.T) {
	m := loadSample(t)
	app, err := m.Application()
	require.NoError(t, err)

	assert.Equal(t, "ExampleApp", app.ID())
	assert.Equal(t, "www/index.html", app.StartPage())

	long := strings.Repeat("a", 70)
	_, err = app.SetID(long)
	require.NoError(t, err)
	assert.Len(t, app.ID(), MaxApplicationIDLength)

	_, err = app.SetID("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	_, err = app.SetStartPage("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))

	app.SetAccessRules([]string{"https://example.org", "https://example.com/*"})
	assert.Equal(t, []string{"https://example.org", "https://example.com/*"}, app.AccessRules())

	rule := m.Root().Find("./Applications/Application/uap:ApplicationContentUriRules/uap:Rule")
	require.NotNil(t, rule)
	assert.Equal(t, "include", rule.AttrValue("Type"))
	assert.Equal(t, "all", rule.AttrValue("WindowsRuntimeAccess"))

	app.SetAccessRules(nil)
	assert.Empty(t, app.AccessRules())
	assert.Nil(t, m.Root().Find("./Applications/Application/uap:ApplicationContentUriRules"))
}

func TestVisualElements(t *testing.T) {
	m := loadSample(t)
	visual, err := m.VisualElements()
	require.NoError(t, err)

	assert.Equal(t, "Example", visual.DisplayName())
	assert.Equal(t, "Example app", visual.Description())
	assert.Equal(t, "#464646", visual.BackgroundColor())

	_, err = visual.SetDescription("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	_, err = visual.SetDescription(strings.Repeat("d", MaxDescriptionLength+10))
	require.NoError(t, err)
	assert.Len(t, visual.Description(), MaxDescriptionLength)

	_, err = visual.SetBackgroundColor("0xFF112233")
	require.NoError(t, err)
	assert.Equal(t, "#112233", visual.BackgroundColor())

	visual.TrySetBackgroundColor("not-a-color")
	assert.Equal(t, "#112233", visual.BackgroundColor())

	_, err = visual.SetSplashBackgroundColor("#ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", visual.SplashBackgroundColor())
	visual.TrySetSplashBackgroundColor("#12")
	assert.Equal(t, "#ABCDEF", visual.SplashBackgroundColor())

	_, err = visual.SetForegroundText("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", visual.ForegroundText())
	_, err = visual.SetForegroundText("grey")
	assert.True(t, errors.Is(err, oerrors.ErrValue))

	assert.False(t, visual.ToastCapable())
	visual.SetToastCapable(true)
	assert.True(t, visual.ToastCapable())
	visual.SetToastCapable(false)
	assert.False(t, visual.ToastCapable())

	assert.Empty(t, visual.DefaultTileShortName())
	_, err = visual.SetDefaultTileShortName("Ex")
	require.NoError(t, err)
	assert.Equal(t, "Ex", visual.DefaultTileShortName())
}

func TestOrientation(t *testing.T) {
	m := loadSample(t)
	visual, err := m.VisualElements()
	require.NoError(t, err)
	rotationPath := "./Applications/Application/uap:VisualElements/uap:InitialRotationPreference"

	assert.Equal(t, "default", visual.Orientation())

	_, err = visual.SetOrientation("portrait")
	require.NoError(t, err)
	assert.Equal(t, []string{"portrait", "portraitFlipped"}, visual.Rotations())
	assert.Equal(t, "portrait", visual.Orientation())

	_, err = visual.SetOrientation("Landscape")
	require.NoError(t, err)
	assert.Equal(t, "landscape", visual.Orientation())
	assert.Len(t, m.Root().FindAll(rotationPath), 1)

	_, err = visual.SetOrientation("all")
	require.NoError(t, err)
	assert.Len(t, visual.Rotations(), 4)
	assert.Equal(t, "all", visual.Orientation())

	_, err = visual.SetOrientation("sideways")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	assert.Equal(t, "all", visual.Orientation())

	_, err = visual.SetOrientation("default")
	require.NoError(t, err)
	assert.Empty(t, visual.Rotations())
	assert.Nil(t, m.Root().Find(rotationPath))
	assert.Equal(t, "default", visual.Orientation())

	_, err = visual.SetOrientation("portrait")
	require.NoError(t, err)
	_, err = visual.SetOrientation("")
	require.NoError(t, err)
	assert.Nil(t, m.Root().Find(rotationPath))
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#464646", want: "#464646"},
		{in: "#FF464646", want: "#464646"},
		{in: "0x464646", want: "#464646"},
		{in: "0xFF464646", want: "#464646"},
		{in: "Transparent", want: "transparent"},
		{in: "red", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeColor(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, oerrors.ErrValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneIdentity(t *testing.T) {
	m := loadSample(t)
	phone, err := m.PhoneIdentity()
	require.NoError(t, err)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", phone.ProductID())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", phone.PublisherID())

	_, err = phone.SetProductID("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	_, err = phone.SetPublisherID("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))

	_, err = phone.SetProductID("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", phone.ProductID())
}

func TestSetPackageName(t *testing.T) {
	m := loadSample(t)

	got, err := m.SetPackageName("org.example.renamed")
	require.NoError(t, err)
	assert.Same(t, m, got)

	id, err := m.Identity()
	require.NoError(t, err)
	assert.Equal(t, "org.example.renamed", id.Name())

	_, err = m.SetPackageName("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
}

func TestSetAppName(t *testing.T) {
	m := loadSample(t)

	_, err := m.SetAppName("Renamed")
	require.NoError(t, err)

	props, err := m.Properties()
	require.NoError(t, err)
	visual, err := m.VisualElements()
	require.NoError(t, err)

	assert.Equal(t, "Renamed", props.DisplayName())
	assert.Equal(t, "Renamed", visual.DisplayName())
	assert.Equal(t, "Renamed", visual.DefaultTileShortName())

	_, err = m.SetAppName("")
	assert.True(t, errors.Is(err, oerrors.ErrValue))
	assert.Equal(t, "Renamed", props.DisplayName())
}

func TestSetAppName_PartialFailureKeepsEarlierEdits(t *testing.T) {
	m, err := Parse("partial.appxmanifest", []byte(
		`<Package xmlns:uap="x"><Properties><DisplayName>Old</DisplayName></Properties></Package>`))
	require.NoError(t, err)

	_, err = m.SetAppName("New")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFormat))

	props, err := m.Properties()
	require.NoError(t, err)
	assert.Equal(t, "New", props.DisplayName())
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteManifest(t, dir, "package.windows10.appxmanifest")

	m, err := Load(path)
	require.NoError(t, err)
	_, err = m.SetPackageName("org.example.written")
	require.NoError(t, err)
	require.NoError(t, m.Write(""))

	content := testutil.ReadFile(t, path)
	assert.Contains(t, content, `Name="org.example.written"`)
	assert.Contains(t, content, "\n    <Identity")
	assert.Equal(t, 1, strings.Count(content, `Name="picturesLibrary"`))

	other := filepath.Join(dir, "copy.appxmanifest")
	require.NoError(t, m.Write(other))
	assert.Equal(t, content, testutil.ReadFile(t, other))
}

func TestSummary(t *testing.T) {
	m := loadSample(t)
	s, err := m.Summary()
	require.NoError(t, err)

	assert.Equal(t, "org.example.app", s.Identity.Name)
	assert.Equal(t, "Example", s.Properties.DisplayName)
	assert.Equal(t, "ExampleApp", s.Application.ID)
	assert.Equal(t, "#464646", s.Application.BackgroundColor)
	assert.Len(t, s.Capabilities, 4)
	assert.Equal(t, []string{"picturesLibrary"}, s.Restricted)
	require.Len(t, s.Dependencies, 1)
	assert.Equal(t, "Windows.Universal", s.Dependencies[0].Name)
}

func TestSummary_BareManifest(t *testing.T) {
	m, err := Parse("bare.appxmanifest", []byte(`<Package xmlns:uap="x"/>`))
	require.NoError(t, err)

	s, err := m.Summary()
	require.NoError(t, err)
	assert.Empty(t, s.Identity.Name)
	assert.Empty(t, s.Capabilities)
	assert.Empty(t, s.Dependencies)
}
