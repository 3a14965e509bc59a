package manifest

import (
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/xmltree"
)

// Properties is the <Properties> section. Its values are element text.
type Properties struct {
	m  *Manifest
	el *xmltree.Element
}

// Properties returns the properties section or a format error.
func (m *Manifest) Properties() (Properties, error) {
	el, err := m.section(propertiesPath, "Properties")
	if err != nil {
		return Properties{}, err
	}
	return Properties{m: m, el: el}, nil
}

// Manifest returns the owning manifest.
func (p Properties) Manifest() *Manifest { return p.m }

func (p Properties) text(tag string) string {
	if el := p.el.Find("./" + tag); el != nil {
		return el.Text()
	}
	return ""
}

// DisplayName returns the package display name.
func (p Properties) DisplayName() string { return p.text("DisplayName") }

// SetDisplayName sets the package display name.
func (p Properties) SetDisplayName(name string) (Properties, error) {
	if name == "" {
		return p, oerrors.NewValueError("Properties/DisplayName", "display name must not be empty")
	}
	child(p.el, "DisplayName").SetText(name)
	return p, nil
}

// PublisherDisplayName returns the publisher display name.
func (p Properties) PublisherDisplayName() string { return p.text("PublisherDisplayName") }

// SetPublisherDisplayName sets the publisher display name.
func (p Properties) SetPublisherDisplayName(name string) (Properties, error) {
	if name == "" {
		return p, oerrors.NewValueError("Properties/PublisherDisplayName", "publisher display name must not be empty")
	}
	child(p.el, "PublisherDisplayName").SetText(name)
	return p, nil
}

// Description returns the package description.
func (p Properties) Description() string { return p.text("Description") }

// SetDescription sets the package description. An empty description removes
// the element.
func (p Properties) SetDescription(description string) Properties {
	if description == "" {
		if el := p.el.Find("./Description"); el != nil {
			p.el.Remove(el)
		}
		return p
	}
	child(p.el, "Description").SetText(description)
	return p
}
