package manifest

import (
	"fmt"

	"github.com/winpack/cli/internal/uap"
	"github.com/winpack/cli/internal/xmltree"
)

const targetDeviceFamilyTag = "TargetDeviceFamily"

// Dependencies returns the TargetDeviceFamily entries of <Dependencies>.
func (m *Manifest) Dependencies() ([]uap.VersionRange, error) {
	deps := m.root.Find(dependenciesPath)
	if deps == nil {
		return nil, nil
	}

	var out []uap.VersionRange
	for _, el := range deps.FindAll("./" + targetDeviceFamilyTag) {
		minV, err := uap.ParseVersion(el.AttrValue("MinVersion"))
		if err != nil {
			return nil, fmt.Errorf("%s %s MinVersion: %w", m.path, el.AttrValue("Name"), err)
		}
		maxV, err := uap.ParseVersion(el.AttrValue("MaxVersionTested"))
		if err != nil {
			return nil, fmt.Errorf("%s %s MaxVersionTested: %w", m.path, el.AttrValue("Name"), err)
		}
		out = append(out, uap.VersionRange{
			Name:             el.AttrValue("Name"),
			MinVersion:       minV,
			MaxVersionTested: maxV,
		})
	}
	return out, nil
}

// SetDependencies replaces the TargetDeviceFamily entries with one element
// per range, in order. Other dependency children are kept after them.
func (m *Manifest) SetDependencies(ranges []uap.VersionRange) {
	deps := m.root.Find(dependenciesPath)
	if deps == nil {
		deps = xmltree.NewElement("Dependencies")
		m.root.InsertAt(dependenciesIndex(m.root), deps)
	}

	for _, el := range deps.FindAll("./" + targetDeviceFamilyTag) {
		deps.Remove(el)
	}

	for i, r := range ranges {
		el := xmltree.NewElement(targetDeviceFamilyTag)
		el.SetAttr("Name", r.Name)
		el.SetAttr("MinVersion", r.MinVersion.String())
		el.SetAttr("MaxVersionTested", r.MaxVersionTested.String())
		deps.InsertAt(i, el)
	}
}

// dependenciesIndex is the child position that follows Identity and
// Properties, where the schema places <Dependencies>.
func dependenciesIndex(root *xmltree.Element) int {
	idx := 0
	for i, c := range root.Children() {
		switch c.LocalName() {
		case "Identity", "PhoneIdentity", "Properties":
			idx = i + 1
		}
	}
	return idx
}
