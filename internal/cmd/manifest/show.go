package manifest

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
)

// NewShowCmd creates the manifest show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show [FILE]",
		Short: "Show the managed fields of a manifest",
		Long: `Print identity, properties, application, dependencies and capabilities
of a manifest as a table, YAML or JSON (--output).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runShow(c, cfg, args)
		},
	}
}

func runShow(c *cobra.Command, cfg *cmdtypes.GlobalConfig, args []string) error {
	m, err := loadManifest(cfg, args)
	if err != nil {
		return err
	}

	s, err := m.Summary()
	if err != nil {
		return cmdutil.ReportError("reading manifest", err)
	}
	return cmdutil.WriteSummary(c.OutOrStdout(), s, cmdutil.OutputFormat(cfg))
}
