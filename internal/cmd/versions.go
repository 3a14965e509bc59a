package cmd

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	prefs := &cmdutil.PrefsFlags{}

	c := &cobra.Command{
		Use:   "versions",
		Short: "Print target device family version ranges",
		Long: `Resolve the target device family version ranges from a preference file.

Preferences named <Family>-MinVersion and <Family>-MaxVersionTested set the
bounds of a device family. Windows.Universal is always present and defaults
to 10.0.10240.0 for both bounds.

Examples:
  winpack versions
  winpack versions --preferences config.xml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersions(c, cfg, prefs)
		},
	}

	prefs.AddTo(c)

	return c
}

func runVersions(c *cobra.Command, cfg *cmdtypes.GlobalConfig, prefs *cmdutil.PrefsFlags) error {
	ranges, err := cmdutil.ResolveRanges(prefs.Path(cfg))
	if err != nil {
		return cmdutil.ReportError("resolving versions", err)
	}
	return cmdutil.WriteRanges(c.OutOrStdout(), ranges, cmdutil.OutputFormat(cfg))
}
