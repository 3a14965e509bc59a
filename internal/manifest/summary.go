package manifest

import "github.com/winpack/cli/internal/uap"

// Summary is a flat view of the fields winpack manages, used for printing
// and for structural diffs.
type Summary struct {
	Path         string             `json:"path" yaml:"path"`
	Identity     IdentitySummary    `json:"identity" yaml:"identity"`
	Properties   PropertiesSummary  `json:"properties" yaml:"properties"`
	Application  ApplicationSummary `json:"application" yaml:"application"`
	Capabilities []Capability       `json:"capabilities" yaml:"capabilities"`
	Restricted   []string           `json:"restricted,omitempty" yaml:"restricted,omitempty"`
	Dependencies []uap.VersionRange `json:"dependencies" yaml:"dependencies"`
}

// IdentitySummary holds the package identity.
type IdentitySummary struct {
	Name      string `json:"name" yaml:"name"`
	Publisher string `json:"publisher" yaml:"publisher"`
	Version   string `json:"version" yaml:"version"`
}

// PropertiesSummary holds the package properties.
type PropertiesSummary struct {
	DisplayName          string `json:"displayName" yaml:"displayName"`
	PublisherDisplayName string `json:"publisherDisplayName" yaml:"publisherDisplayName"`
	Description          string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ApplicationSummary holds the application and its visual elements.
type ApplicationSummary struct {
	ID              string   `json:"id" yaml:"id"`
	StartPage       string   `json:"startPage,omitempty" yaml:"startPage,omitempty"`
	DisplayName     string   `json:"displayName" yaml:"displayName"`
	BackgroundColor string   `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Orientation     string   `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	AccessRules     []string `json:"accessRules,omitempty" yaml:"accessRules,omitempty"`
}

// Summary collects the managed fields. Missing sections leave their part of
// the summary empty; a malformed dependency version is an error.
func (m *Manifest) Summary() (*Summary, error) {
	s := &Summary{
		Path:         m.path,
		Capabilities: m.Capabilities().List(),
		Restricted:   m.RestrictedCapabilities(),
	}

	if id, err := m.Identity(); err == nil {
		s.Identity = IdentitySummary{Name: id.Name(), Publisher: id.Publisher(), Version: id.Version()}
	}

	if props, err := m.Properties(); err == nil {
		s.Properties = PropertiesSummary{
			DisplayName:          props.DisplayName(),
			PublisherDisplayName: props.PublisherDisplayName(),
			Description:          props.Description(),
		}
	}

	if app, err := m.Application(); err == nil {
		s.Application.ID = app.ID()
		s.Application.StartPage = app.StartPage()
		s.Application.AccessRules = app.AccessRules()
	}

	if visual, err := m.VisualElements(); err == nil {
		s.Application.DisplayName = visual.DisplayName()
		s.Application.BackgroundColor = visual.BackgroundColor()
		s.Application.Orientation = visual.Orientation()
	}

	deps, err := m.Dependencies()
	if err != nil {
		return nil, err
	}
	s.Dependencies = deps

	return s, nil
}
