// Package changes turns plugin-supplied manifest edits into concrete edits
// and grafts them onto manifests.
package changes

import (
	"bytes"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/winpack/cli/internal/errors"
)

const (
	// GenericManifest is the target plugins use for "the Windows manifest".
	GenericManifest = "package.appxmanifest"

	// Windows10Manifest is the only concrete manifest variant.
	Windows10Manifest = "package.windows10.appxmanifest"
)

// Change is one edit instruction. Target names the file it applies to; the
// remaining fields are carried through demultiplexing untouched.
type Change struct {
	Target       string   `json:"target"`
	Parent       string   `json:"parent,omitempty"`
	After        string   `json:"after,omitempty"`
	XMLs         []string `json:"xmls,omitempty"`
	Versions     string   `json:"versions,omitempty"`
	DeviceTarget string   `json:"deviceTarget,omitempty"`
}

// File is the on-disk form of a change list.
type File struct {
	Changes []Change `json:"changes"`
}

// IsGeneric reports whether c targets the generic manifest.
func (c Change) IsGeneric() bool {
	return c.Target == GenericManifest
}

// Process expands changes aimed at the generic manifest into changes aimed at
// concrete manifest variants. Other changes pass through, and order is kept.
// When nothing targets the generic manifest the input slice is returned as is.
func Process(changes []Change) []Change {
	generic := false
	for _, c := range changes {
		if c.IsGeneric() {
			generic = true
			break
		}
	}
	if !generic {
		return changes
	}

	out := make([]Change, 0, len(changes))
	for _, c := range changes {
		if !c.IsGeneric() {
			out = append(out, c)
			continue
		}
		for _, target := range manifestTargets(c) {
			concrete := c
			concrete.Target = target
			out = append(out, concrete)
		}
	}
	return out
}

// manifestTargets lists the concrete manifests a generic change expands to.
// Versions and DeviceTarget are where a per-version or per-family split would
// be decided; every change currently maps to the Windows 10 manifest.
func manifestTargets(_ Change) []string {
	return []string{Windows10Manifest}
}

// LoadFile reads a change list from a YAML or JSON file. Both a bare list and
// a document with a top-level "changes" key are accepted.
func LoadFile(path string) ([]Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("change file not found", path, "")
		}
		return nil, fmt.Errorf("reading change file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes a change list. path only names the source in errors. Unknown
// fields are rejected in both forms.
func Parse(path string, data []byte) ([]Change, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, invalidChangeFile(path, err)
	}
	js = bytes.TrimSpace(js)
	if len(js) == 0 || bytes.Equal(js, []byte("null")) {
		return nil, nil
	}

	if js[0] == '[' {
		var list []Change
		if err := yaml.UnmarshalStrict(data, &list); err != nil {
			return nil, invalidChangeFile(path, err)
		}
		return list, validate(path, list)
	}

	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, invalidChangeFile(path, err)
	}
	return f.Changes, validate(path, f.Changes)
}

func invalidChangeFile(path string, err error) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid change file: %v", err), path, "",
		"Expected a list of changes or a document with a changes key")
}

func validate(path string, list []Change) error {
	for i, c := range list {
		if c.Target == "" {
			return oerrors.NewValidationError(
				fmt.Sprintf("change %d has no target", i), path, "target", "")
		}
	}
	return nil
}
