package manifest

import (
	"regexp"
	"sort"
	"strings"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/xmltree"
)

// MaxDescriptionLength is the schema limit for VisualElements@Description.
const MaxDescriptionLength = 2048

const (
	defaultTileTag     = "uap:DefaultTile"
	splashScreenTag    = "uap:SplashScreen"
	rotationRootTag    = "uap:InitialRotationPreference"
	rotationTag        = "uap:Rotation"
	transparentColor   = "transparent"
	orientationDefault = "default"
)

// OrientationPresets maps an orientation preference to its rotations.
// "default" declares none, leaving rotation to the device.
var OrientationPresets = map[string][]string{
	orientationDefault: nil,
	"portrait":         {"portrait", "portraitFlipped"},
	"landscape":        {"landscape", "landscapeFlipped"},
	"all":              {"portrait", "landscape", "landscapeFlipped", "portraitFlipped"},
}

// OrientationNames lists the preset names in help order.
var OrientationNames = []string{orientationDefault, "portrait", "landscape", "all"}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// VisualElements is the <uap:VisualElements> section of the application.
type VisualElements struct {
	m  *Manifest
	el *xmltree.Element
}

// VisualElements returns the visual elements section or a format error.
func (m *Manifest) VisualElements() (VisualElements, error) {
	el, err := m.section(visualElementsPath, "uap:VisualElements")
	if err != nil {
		return VisualElements{}, err
	}
	return VisualElements{m: m, el: el}, nil
}

// Manifest returns the owning manifest.
func (v VisualElements) Manifest() *Manifest { return v.m }

// DisplayName returns the tile display name.
func (v VisualElements) DisplayName() string { return v.el.AttrValue("DisplayName") }

// SetDisplayName sets the tile display name.
func (v VisualElements) SetDisplayName(name string) (VisualElements, error) {
	if name == "" {
		return v, oerrors.NewValueError("VisualElements@DisplayName", "display name must not be empty")
	}
	v.el.SetAttr("DisplayName", name)
	return v, nil
}

// Description returns the application description.
func (v VisualElements) Description() string { return v.el.AttrValue("Description") }

// SetDescription sets the application description, truncated to
// MaxDescriptionLength characters.
func (v VisualElements) SetDescription(description string) (VisualElements, error) {
	if description == "" {
		return v, oerrors.NewValueError("VisualElements@Description", "description must not be empty")
	}
	if r := []rune(description); len(r) > MaxDescriptionLength {
		description = string(r[:MaxDescriptionLength])
	}
	v.el.SetAttr("Description", description)
	return v, nil
}

// BackgroundColor returns the tile background color.
func (v VisualElements) BackgroundColor() string { return v.el.AttrValue("BackgroundColor") }

// SetBackgroundColor sets the tile background color. See NormalizeColor for
// accepted forms.
func (v VisualElements) SetBackgroundColor(color string) (VisualElements, error) {
	c, err := NormalizeColor(color)
	if err != nil {
		return v, err
	}
	v.el.SetAttr("BackgroundColor", c)
	return v, nil
}

// TrySetBackgroundColor is SetBackgroundColor that leaves the manifest
// unchanged instead of failing.
func (v VisualElements) TrySetBackgroundColor(color string) VisualElements {
	if _, err := v.SetBackgroundColor(color); err != nil {
		output.Debug("ignoring background color", "color", color, "error", err)
	}
	return v
}

// ForegroundText returns "light" or "dark", or "" when unset.
func (v VisualElements) ForegroundText() string { return v.el.AttrValue("ForegroundText") }

// SetForegroundText sets the tile text theme to "light" or "dark".
func (v VisualElements) SetForegroundText(theme string) (VisualElements, error) {
	if theme != "light" && theme != "dark" {
		return v, oerrors.NewValueError("VisualElements@ForegroundText", "foreground text must be light or dark, got "+theme)
	}
	v.el.SetAttr("ForegroundText", theme)
	return v, nil
}

// DefaultTileShortName returns the short name of the default tile.
func (v VisualElements) DefaultTileShortName() string {
	if tile := v.el.Find("./" + defaultTileTag); tile != nil {
		return tile.AttrValue("ShortName")
	}
	return ""
}

// SetDefaultTileShortName sets the default tile short name, creating the
// tile element when needed.
func (v VisualElements) SetDefaultTileShortName(name string) (VisualElements, error) {
	if name == "" {
		return v, oerrors.NewValueError("DefaultTile@ShortName", "short name must not be empty")
	}
	child(v.el, defaultTileTag).SetAttr("ShortName", name)
	return v, nil
}

// SplashBackgroundColor returns the splash screen background color.
func (v VisualElements) SplashBackgroundColor() string {
	if splash := v.el.Find("./" + splashScreenTag); splash != nil {
		return splash.AttrValue("BackgroundColor")
	}
	return ""
}

// SetSplashBackgroundColor sets the splash screen background color.
func (v VisualElements) SetSplashBackgroundColor(color string) (VisualElements, error) {
	c, err := NormalizeColor(color)
	if err != nil {
		return v, err
	}
	child(v.el, splashScreenTag).SetAttr("BackgroundColor", c)
	return v, nil
}

// TrySetSplashBackgroundColor is SetSplashBackgroundColor that leaves the
// manifest unchanged instead of failing.
func (v VisualElements) TrySetSplashBackgroundColor(color string) VisualElements {
	if _, err := v.SetSplashBackgroundColor(color); err != nil {
		output.Debug("ignoring splash background color", "color", color, "error", err)
	}
	return v
}

// ToastCapable reports whether toast notifications are enabled.
func (v VisualElements) ToastCapable() bool {
	return v.el.AttrValue("ToastCapable") == "true"
}

// SetToastCapable enables or disables toast notifications.
func (v VisualElements) SetToastCapable(enabled bool) VisualElements {
	if enabled {
		v.el.SetAttr("ToastCapable", "true")
	} else {
		v.el.RemoveAttr("ToastCapable")
	}
	return v
}

// Rotations returns the initial rotation preferences in document order.
func (v VisualElements) Rotations() []string {
	rs := v.el.FindAll("./" + rotationRootTag + "/" + rotationTag)
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.AttrValue("Preference"))
	}
	return out
}

// Orientation returns the preset matching the declared rotations, "default"
// when none is declared, or the comma-joined rotations when no preset matches.
func (v VisualElements) Orientation() string {
	rotations := v.Rotations()
	if len(rotations) == 0 {
		return orientationDefault
	}
	got := sortedCopy(rotations)
	for _, name := range OrientationNames {
		preset := OrientationPresets[name]
		if len(preset) > 0 && strings.Join(sortedCopy(preset), ",") == strings.Join(got, ",") {
			return name
		}
	}
	return strings.Join(rotations, ",")
}

// SetOrientation replaces the rotation preferences with a preset. "default"
// and the empty string remove <uap:InitialRotationPreference>.
func (v VisualElements) SetOrientation(orientation string) (VisualElements, error) {
	name := strings.ToLower(orientation)
	if name == "" {
		name = orientationDefault
	}
	rotations, ok := OrientationPresets[name]
	if !ok {
		return v, oerrors.NewValueError("InitialRotationPreference",
			"orientation must be one of "+strings.Join(OrientationNames, ", ")+", got "+orientation)
	}

	if existing := v.el.Find("./" + rotationRootTag); existing != nil {
		v.el.Remove(existing)
	}
	if len(rotations) == 0 {
		return v, nil
	}
	root := xmltree.NewElement(rotationRootTag)
	for _, r := range rotations {
		el := xmltree.NewElement(rotationTag)
		el.SetAttr("Preference", r)
		root.Append(el)
	}
	v.el.Append(root)
	return v, nil
}

// NormalizeColor accepts "#RRGGBB", "#AARRGGBB", "0xRRGGBB", "0xAARRGGBB" or
// "transparent" and returns the manifest form: "#RRGGBB" or "transparent".
// Alpha channels are dropped.
func NormalizeColor(color string) (string, error) {
	c := strings.TrimSpace(color)
	if strings.EqualFold(c, transparentColor) {
		return transparentColor, nil
	}

	if strings.HasPrefix(c, "0x") || strings.HasPrefix(c, "0X") {
		c = "#" + c[2:]
	}
	if len(c) == 9 && c[0] == '#' {
		c = "#" + c[3:]
	}

	if !hexColor.MatchString(c) {
		return "", oerrors.NewValueError("color", "invalid color "+color+", expected #RRGGBB")
	}
	return c, nil
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
