// Package prefs reads project preferences into ordered name/value pairs.
//
// Three sources are understood, chosen by file extension:
//   - .xml: a Cordova-style config.xml. Top-level <preference> elements come
//     first, then those inside <platform name="windows">.
//   - .yaml / .yml: a "preferences" list of {name, value} maps.
//   - .toml: [[preference]] tables with name and value keys.
package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/uap"
	"github.com/winpack/cli/internal/xmltree"
)

// Platform is the platform section read from config.xml.
const Platform = "windows"

// Load reads preferences from path, preserving their order.
func Load(path string) ([]uap.Preference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("preference source not found", path,
				"Pass --preferences or set preferences in the winpack config")
		}
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(data, path)
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".toml":
		return ParseTOML(data, path)
	default:
		return nil, oerrors.NewValidationError(
			"unsupported preference file type", path, "",
			"Use a .xml, .yaml or .toml file")
	}
}

// ParseXML reads <preference name value> elements from a config.xml.
func ParseXML(data []byte, source string) ([]uap.Preference, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, oerrors.NewFormatError("document has no root element", source, "")
	}

	prefs := collectXML(root.FindAll("./preference"))
	for _, platform := range root.FindAll("./platform") {
		if platform.AttrValue("name") == Platform {
			prefs = append(prefs, collectXML(platform.FindAll("./preference"))...)
		}
	}
	return prefs, nil
}

func collectXML(elements []*xmltree.Element) []uap.Preference {
	out := make([]uap.Preference, 0, len(elements))
	for _, el := range elements {
		name := el.AttrValue("name")
		if name == "" {
			continue
		}
		out = append(out, uap.Preference{Name: name, Value: el.AttrValue("value")})
	}
	return out
}

type yamlFile struct {
	Preferences []uap.Preference `yaml:"preferences"`
}

// ParseYAML reads a "preferences" list from YAML.
func ParseYAML(data []byte, source string) ([]uap.Preference, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return filterNamed(f.Preferences), nil
}

type tomlFile struct {
	Preference []uap.Preference `toml:"preference"`
}

// ParseTOML reads [[preference]] tables. Unknown keys are rejected.
func ParseTOML(data []byte, source string) ([]uap.Preference, error) {
	var f tomlFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return filterNamed(f.Preference), nil
}

func filterNamed(in []uap.Preference) []uap.Preference {
	out := make([]uap.Preference, 0, len(in))
	for _, p := range in {
		if p.Name != "" {
			out = append(out, p)
		}
	}
	return out
}

// Lookup returns the last value set for name, matching config.xml semantics
// where platform preferences override global ones.
func Lookup(prefs []uap.Preference, name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, p := range prefs {
		if p.Name == name {
			value, found = p.Value, true
		}
	}
	return value, found
}
