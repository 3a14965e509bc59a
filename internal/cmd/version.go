package cmd

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show winpack version information.

Displays:
  - winpack version, commit, and build date
  - CUE SDK version (embedded in CLI)
  - baseline Windows.Universal version`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, cfg)
		},
	}
}

func runVersion(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	info := version.Get()

	format := cmdutil.OutputFormat(cfg)
	if format == output.FormatTable {
		output.Println(info.String())
		return nil
	}
	return output.WriteValue(c.OutOrStdout(), info, format)
}
