package cmdutil

import (
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/prefs"
	"github.com/winpack/cli/internal/uap"
)

// ResolveRanges loads the preference file at path and resolves the device
// family version ranges. Ranges whose minimum exceeds the tested maximum are
// kept but reported.
func ResolveRanges(path string) ([]uap.VersionRange, error) {
	list, err := prefs.Load(path)
	if err != nil {
		return nil, err
	}
	output.Debug("loaded preferences", "path", path, "count", len(list))

	ranges, err := uap.ResolveRanges(list)
	if err != nil {
		return nil, err
	}

	for _, r := range ranges {
		if r.MinVersion.Compare(r.MaxVersionTested) > 0 {
			output.Warn("MinVersion is greater than MaxVersionTested",
				"family", r.Name,
				"min", r.MinVersion.String(),
				"max", r.MaxVersionTested.String(),
			)
		}
	}
	return ranges, nil
}
