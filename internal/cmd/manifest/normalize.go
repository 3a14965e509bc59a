package manifest

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
)

// NewNormalizeCmd creates the manifest normalize command.
func NewNormalizeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &cmdutil.WriteFlags{}

	c := &cobra.Command{
		Use:   "normalize [FILE]",
		Short: "Rewrite a manifest with normalized capabilities",
		Long: `Prefix namespaced capabilities with uap:, drop duplicates and sort them
in schema order, then rewrite the manifest with 4-space indentation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNormalize(c, cfg, flags, args)
		},
	}

	flags.AddTo(c)

	return c
}

func runNormalize(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.WriteFlags, args []string) error {
	m, err := loadManifest(cfg, args)
	if err != nil {
		return err
	}

	caps := m.Capabilities()
	caps.Normalize()
	if restricted := caps.Restricted(); len(restricted) > 0 {
		output.ManifestLogger(m.Path()).Warn("manifest declares restricted capabilities", "capabilities", restricted)
	}

	return writeBack(c, []*manifest.Manifest{m}, flags.DryRun)
}
