// Package uap resolves Windows device-family version ranges from preferences.
package uap

import (
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/winpack/cli/internal/errors"
)

// Version is a four-component dotted version, W.X.Y.Z.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// ParseVersion parses a four-component version string. Any component that is
// not a non-negative integer, or a component count other than four, yields an
// error wrapping errors.ErrNumericRange.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return Version{}, oerrors.NewNumericRangeError(s, fmt.Sprintf("%d components", len(parts)))
	}

	var nums [4]int
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return Version{}, oerrors.NewNumericRangeError(s, p)
		}
		nums[i] = int(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}

// MustParseVersion is ParseVersion for constants. It panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version as W.X.Y.Z.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or higher than o.
func (v Version) Compare(o Version) int {
	a := [4]int{v.Major, v.Minor, v.Build, v.Revision}
	b := [4]int{o.Major, o.Minor, o.Build, o.Revision}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler so versions render as strings
// in YAML and JSON output.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
