package manifest

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/changes"
	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/output"
)

// applyOptions holds the flags for the apply command.
type applyOptions struct {
	changesFile string
	write       cmdutil.WriteFlags
}

// NewApplyCmd creates the manifest apply command.
func NewApplyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &applyOptions{}

	c := &cobra.Command{
		Use:   "apply",
		Short: "Graft a change list into the project manifests",
		Long: `Apply a YAML or JSON change list to the manifests in the project directory.

Each change names a target manifest, a parent element path, optional
preceding tags (After, separated by ';') and XML fragments. Changes that
target the generic package.appxmanifest are redirected to the Windows 10
manifest. Fragments already present under the parent are skipped.

Examples:
  winpack manifest apply --changes changes.yaml
  winpack manifest apply --changes changes.json --project-dir platforms/windows --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runApply(c, cfg, opts)
		},
	}

	c.Flags().StringVar(&opts.changesFile, "changes", "", "Change list file (YAML or JSON)")
	_ = c.MarkFlagRequired("changes")
	opts.write.AddTo(c)

	return c
}

func runApply(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *applyOptions) error {
	list, err := changes.LoadFile(opts.changesFile)
	if err != nil {
		return cmdutil.ReportError("loading changes", err)
	}
	output.Debug("loaded changes", "path", opts.changesFile, "count", len(list))

	ms, err := changes.ApplyAll(cfg.ManifestCache(), cfg.ProjectDir, list)
	if err != nil {
		return cmdutil.ReportError("applying changes", err)
	}

	return writeBack(c, ms, opts.write.DryRun)
}
