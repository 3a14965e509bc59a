package uap

import "strings"

// UniversalFamily is the device family every package targets.
const UniversalFamily = "Windows.Universal"

// Preference name suffixes that carry version bounds.
const (
	minVersionSuffix       = "-MinVersion"
	maxVersionTestedSuffix = "-MaxVersionTested"
)

// BaselineVersion bounds the universal family when no preference names it.
var BaselineVersion = Version{Major: 10, Minor: 0, Build: 10240, Revision: 0}

// Preference is one name/value pair from the project configuration.
type Preference struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// VersionRange is the targeted version window of one device family.
type VersionRange struct {
	Name             string  `json:"name" yaml:"name"`
	MinVersion       Version `json:"minVersion" yaml:"minVersion"`
	MaxVersionTested Version `json:"maxVersionTested" yaml:"maxVersionTested"`
}

type partialRange struct {
	min, max       Version
	hasMin, hasMax bool
}

// ResolveRanges turns "<Family>-MinVersion" and "<Family>-MaxVersionTested"
// preferences into one range per family, in first-seen family order.
//
// A family given a single bound gets a zero-width range. When the universal
// family is never named it is prepended with both bounds at BaselineVersion,
// so the result is never empty. Other preferences are ignored. A malformed
// version aborts resolution with an error wrapping errors.ErrNumericRange.
func ResolveRanges(prefs []Preference) ([]VersionRange, error) {
	var order []string
	families := make(map[string]*partialRange)

	for _, p := range prefs {
		family, isMin, ok := splitBoundName(p.Name)
		if !ok {
			continue
		}

		v, err := ParseVersion(p.Value)
		if err != nil {
			return nil, err
		}

		r, seen := families[family]
		if !seen {
			r = &partialRange{}
			families[family] = r
			order = append(order, family)
		}
		if isMin {
			r.min, r.hasMin = v, true
		} else {
			r.max, r.hasMax = v, true
		}
	}

	result := make([]VersionRange, 0, len(order)+1)
	if _, ok := families[UniversalFamily]; !ok {
		result = append(result, VersionRange{
			Name:             UniversalFamily,
			MinVersion:       BaselineVersion,
			MaxVersionTested: BaselineVersion,
		})
	}

	for _, family := range order {
		r := families[family]
		if !r.hasMin {
			r.min = r.max
		}
		if !r.hasMax {
			r.max = r.min
		}
		result = append(result, VersionRange{
			Name:             family,
			MinVersion:       r.min,
			MaxVersionTested: r.max,
		})
	}

	return result, nil
}

// splitBoundName reports the family named by a bound preference and whether
// the bound is the minimum.
func splitBoundName(name string) (family string, isMin, ok bool) {
	switch {
	case strings.HasSuffix(name, minVersionSuffix):
		family, isMin = strings.TrimSuffix(name, minVersionSuffix), true
	case strings.HasSuffix(name, maxVersionTestedSuffix):
		family = strings.TrimSuffix(name, maxVersionTestedSuffix)
	default:
		return "", false, false
	}
	return family, isMin, family != ""
}
