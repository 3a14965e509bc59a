package manifest

import (
	"sort"

	"github.com/winpack/cli/internal/xmltree"
)

// NamespacedCapabilities must be declared with the uap: prefix.
var NamespacedCapabilities = map[string]bool{
	"documentsLibrary":         true,
	"picturesLibrary":          true,
	"videosLibrary":            true,
	"musicLibrary":             true,
	"enterpriseAuthentication": true,
	"sharedUserCertificates":   true,
	"removableStorage":         true,
	"appointments":             true,
	"contacts":                 true,
	"userAccountInformation":   true,
	"phoneCall":                true,
	"blockedChatMessages":      true,
	"objects3D":                true,
}

// RestrictedCapabilities require store approval.
var RestrictedCapabilities = map[string]bool{
	"enterpriseAuthentication":   true,
	"sharedUserCertificates":     true,
	"documentsLibrary":           true,
	"musicLibrary":               true,
	"picturesLibrary":            true,
	"videosLibrary":              true,
	"removableStorage":           true,
	"internetClientClientServer": true,
	"privateNetworkClientServer": true,
}

// Capability is one declaration under <Capabilities>.
type Capability struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// CapabilitySet manages the live <Capabilities> element. Every method is a
// no-op on a manifest without one, except Add which creates it.
type CapabilitySet struct {
	root *xmltree.Element
	el   *xmltree.Element
}

// List returns all declarations in document order.
func (s *CapabilitySet) List() []Capability {
	if s.el == nil {
		return nil
	}
	kids := s.el.Children()
	out := make([]Capability, 0, len(kids))
	for _, c := range kids {
		out = append(out, Capability{Type: c.Tag(), Name: c.AttrValue("Name")})
	}
	return out
}

// Add appends a declaration with the given tag and Name.
func (s *CapabilitySet) Add(tag, name string) {
	if s.el == nil {
		s.el = xmltree.NewElement("Capabilities")
		s.root.Append(s.el)
	}
	c := xmltree.NewElement(tag)
	c.SetAttr("Name", name)
	s.el.Append(c)
}

// Prefix moves unprefixed capabilities listed in NamespacedCapabilities into
// the uap namespace. Tags that already carry a prefix, such as uap3:, are kept.
func (s *CapabilitySet) Prefix() {
	if s.el == nil {
		return
	}
	for _, c := range s.el.Children() {
		if NamespacedCapabilities[c.AttrValue("Name")] && c.Prefix() == "" {
			c.SetTag(UAPPrefix + ":" + c.LocalName())
		}
	}
}

// Dedupe removes every declaration whose Name was already declared earlier
// in the document. Declarations without a Name are left alone.
func (s *CapabilitySet) Dedupe() {
	if s.el == nil {
		return
	}
	seen := make(map[string]bool)
	for _, c := range s.el.Children() {
		name := c.AttrValue("Name")
		if name == "" {
			continue
		}
		if seen[name] {
			s.el.Remove(c)
			continue
		}
		seen[name] = true
	}
}

// Sort orders declarations by the local name of their tag, so all
// Capability elements precede DeviceCapability elements.
func (s *CapabilitySet) Sort() {
	if s.el == nil {
		return
	}
	kids := s.el.Children()
	for _, c := range kids {
		s.el.Remove(c)
	}
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].LocalName() < kids[j].LocalName()
	})
	for _, c := range kids {
		s.el.Append(c)
	}
}

// Normalize runs Prefix, Dedupe and Sort in that order.
func (s *CapabilitySet) Normalize() {
	s.Prefix()
	s.Dedupe()
	s.Sort()
}

// Restricted returns the declared names that are restricted capabilities, in
// document order without repeats. A nil result means none are declared.
func (s *CapabilitySet) Restricted() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range s.List() {
		if RestrictedCapabilities[c.Name] && !seen[c.Name] {
			seen[c.Name] = true
			out = append(out, c.Name)
		}
	}
	return out
}
