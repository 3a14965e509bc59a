// Package version provides version information for the winpack CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/winpack/cli/internal/uap"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

const cueModule = "cuelang.org/go"

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK used for config validation, or "unknown"
	// when build info is unavailable.
	CUESDKVersion string `json:"cueSDKVersion"`

	// BaselineVersion is the default Windows.Universal target.
	BaselineVersion string `json:"baselineVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:         Version,
		GitCommit:       GitCommit,
		BuildDate:       BuildDate,
		GoVersion:       runtime.Version(),
		CUESDKVersion:   moduleVersion(cueModule),
		BaselineVersion: uap.BaselineVersion.String(),
	}
}

func moduleVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("winpack version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  CUE SDK:   %s\n  Baseline:  %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.CUESDKVersion, i.BaselineVersion)
}
