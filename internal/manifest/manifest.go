// Package manifest reads, edits and writes Windows 10 package manifests
// (*.appxmanifest).
//
// A Manifest wraps one parsed document. Section views such as Identity and
// VisualElements are small values bound to the located element; edits through
// them are visible to every holder of the Manifest. Capabilities are
// normalized on every write so the output stays schema-valid regardless of
// the order in which edits were made.
package manifest

import (
	"fmt"
	"os"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/xmltree"
)

const (
	// RootTag is the tag of the manifest document element.
	RootTag = "Package"

	// UAPNamespaceAttr is the declaration that marks a Windows 10 manifest.
	UAPNamespaceAttr = "xmlns:uap"

	// UAPPrefix is the namespace prefix of universal-app elements.
	UAPPrefix = "uap"

	// Indent is the number of spaces per level in written manifests.
	Indent = 4
)

// Relative paths of the manifest sections.
const (
	identityPath       = "./Identity"
	propertiesPath     = "./Properties"
	applicationPath    = "./Applications/Application"
	visualElementsPath = "./Applications/Application/uap:VisualElements"
	phoneIdentityPath  = "./mp:PhoneIdentity"
	capabilitiesPath   = "./Capabilities"
	dependenciesPath   = "./Dependencies"
)

// Manifest is one parsed package manifest.
type Manifest struct {
	path string
	doc  *xmltree.Document
	root *xmltree.Element
}

// Load parses and validates the manifest at path. It never consults a Cache.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("manifest not found", path, "")
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	output.Debug("loaded manifest", "path", path)
	return m, nil
}

// Parse builds a manifest from memory. path is only used to name the source
// in errors and as the default write target.
func Parse(path string, data []byte) (*Manifest, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, oerrors.NewFormatError(fmt.Sprintf("malformed XML: %v", err), path, "")
	}
	return newManifest(path, doc)
}

func newManifest(path string, doc *xmltree.Document) (*Manifest, error) {
	root := doc.Root()
	if root == nil || root.Tag() != RootTag {
		got := ""
		if root != nil {
			got = root.Tag()
		}
		return nil, oerrors.NewFormatError(
			fmt.Sprintf("root element is %q, expected %q", got, RootTag), path, RootTag)
	}

	if _, ok := root.Attr(UAPNamespaceAttr); !ok {
		return nil, oerrors.NewUnsupportedVersionError(path,
			"Only Windows 10 manifests declaring "+UAPNamespaceAttr+" are supported")
	}

	return &Manifest{path: path, doc: doc, root: root}, nil
}

// Path returns the file the manifest was read from.
func (m *Manifest) Path() string {
	return m.path
}

// Root returns the document element.
func (m *Manifest) Root() *xmltree.Element {
	return m.root
}

// Capabilities returns the capability set of the manifest.
func (m *Manifest) Capabilities() *CapabilitySet {
	return &CapabilitySet{root: m.root, el: m.root.Find(capabilitiesPath)}
}

// RestrictedCapabilities returns declared restricted capabilities, or nil.
func (m *Manifest) RestrictedCapabilities() []string {
	return m.Capabilities().Restricted()
}

// SetPackageName sets the package identity name.
func (m *Manifest) SetPackageName(name string) (*Manifest, error) {
	id, err := m.Identity()
	if err != nil {
		return m, err
	}
	if _, err := id.SetName(name); err != nil {
		return m, err
	}
	return m, nil
}

// SetAppName sets the display name, the visual-elements display name and the
// default tile short name. It stops at the first failure; edits made before
// it stay applied.
func (m *Manifest) SetAppName(name string) (*Manifest, error) {
	props, err := m.Properties()
	if err != nil {
		return m, err
	}
	if _, err := props.SetDisplayName(name); err != nil {
		return m, err
	}

	visual, err := m.VisualElements()
	if err != nil {
		return m, err
	}
	if _, err := visual.SetDisplayName(name); err != nil {
		return m, err
	}
	if _, err := visual.SetDefaultTileShortName(name); err != nil {
		return m, err
	}
	return m, nil
}

// Bytes normalizes capabilities and renders the manifest.
func (m *Manifest) Bytes() ([]byte, error) {
	m.Capabilities().Normalize()
	return m.doc.Bytes(Indent)
}

// Write normalizes capabilities and writes the manifest to path, or back to
// its source when path is empty.
func (m *Manifest) Write(path string) error {
	if path == "" {
		path = m.path
	}
	m.Capabilities().Normalize()
	if err := m.doc.WriteFile(path, Indent); err != nil {
		return err
	}
	output.Debug("wrote manifest", "path", path)
	return nil
}

// section locates a required sub-element.
func (m *Manifest) section(path, name string) (*xmltree.Element, error) {
	el := m.root.Find(path)
	if el == nil {
		return nil, oerrors.NewFormatError(
			fmt.Sprintf("manifest has no %s element", name), m.path, name)
	}
	return el, nil
}

// child returns the first child of parent with tag, creating it when absent.
func child(parent *xmltree.Element, tag string) *xmltree.Element {
	if el := parent.Find("./" + tag); el != nil {
		return el
	}
	el := xmltree.NewElement(tag)
	parent.Append(el)
	return el
}
