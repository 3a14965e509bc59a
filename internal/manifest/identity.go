package manifest

import (
	"strings"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/uap"
	"github.com/winpack/cli/internal/xmltree"
)

// Identity is the <Identity> section.
type Identity struct {
	m  *Manifest
	el *xmltree.Element
}

// Identity returns the identity section or a format error when it is missing.
func (m *Manifest) Identity() (Identity, error) {
	el, err := m.section(identityPath, "Identity")
	if err != nil {
		return Identity{}, err
	}
	return Identity{m: m, el: el}, nil
}

// Manifest returns the owning manifest.
func (id Identity) Manifest() *Manifest { return id.m }

// Name returns the package identity name.
func (id Identity) Name() string { return id.el.AttrValue("Name") }

// SetName sets the package identity name.
func (id Identity) SetName(name string) (Identity, error) {
	if name == "" {
		return id, oerrors.NewValueError("Identity@Name", "package name must not be empty")
	}
	id.el.SetAttr("Name", name)
	return id, nil
}

// Publisher returns the publisher distinguished name.
func (id Identity) Publisher() string { return id.el.AttrValue("Publisher") }

// SetPublisher sets the publisher distinguished name, e.g. "CN=Example".
func (id Identity) SetPublisher(publisher string) (Identity, error) {
	if publisher == "" {
		return id, oerrors.NewValueError("Identity@Publisher", "publisher must not be empty")
	}
	id.el.SetAttr("Publisher", publisher)
	return id, nil
}

// Version returns the package version as stored.
func (id Identity) Version() string { return id.el.AttrValue("Version") }

// SetVersion stores a package version. Versions with fewer than four
// components are padded with ".0", so "1.2" is stored as "1.2.0.0".
func (id Identity) SetVersion(version string) (Identity, error) {
	if version == "" {
		return id, oerrors.NewValueError("Identity@Version", "version must not be empty")
	}

	padded := PadVersion(version)
	if _, err := uap.ParseVersion(padded); err != nil {
		return id, oerrors.NewValueError("Identity@Version",
			"version "+version+" is not a dotted numeric version of at most four components")
	}

	id.el.SetAttr("Version", padded)
	return id, nil
}

// PadVersion appends ".0" components until version has four.
func PadVersion(version string) string {
	parts := strings.Split(version, ".")
	for len(parts) < 4 {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".")
}
