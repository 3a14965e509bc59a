package manifest

import (
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/xmltree"
)

// PhoneIdentity is the <mp:PhoneIdentity> section.
type PhoneIdentity struct {
	m  *Manifest
	el *xmltree.Element
}

// PhoneIdentity returns the phone identity section or a format error.
func (m *Manifest) PhoneIdentity() (PhoneIdentity, error) {
	el, err := m.section(phoneIdentityPath, "mp:PhoneIdentity")
	if err != nil {
		return PhoneIdentity{}, err
	}
	return PhoneIdentity{m: m, el: el}, nil
}

// Manifest returns the owning manifest.
func (p PhoneIdentity) Manifest() *Manifest { return p.m }

// ProductID returns PhoneProductId.
func (p PhoneIdentity) ProductID() string { return p.el.AttrValue("PhoneProductId") }

// SetProductID sets PhoneProductId.
func (p PhoneIdentity) SetProductID(id string) (PhoneIdentity, error) {
	if id == "" {
		return p, oerrors.NewValueError("PhoneIdentity@PhoneProductId", "phone product id must not be empty")
	}
	p.el.SetAttr("PhoneProductId", id)
	return p, nil
}

// PublisherID returns PhonePublisherId.
func (p PhoneIdentity) PublisherID() string { return p.el.AttrValue("PhonePublisherId") }

// SetPublisherID sets PhonePublisherId.
func (p PhoneIdentity) SetPublisherID(id string) (PhoneIdentity, error) {
	if id == "" {
		return p, oerrors.NewValueError("PhoneIdentity@PhonePublisherId", "phone publisher id must not be empty")
	}
	p.el.SetAttr("PhonePublisherId", id)
	return p, nil
}
