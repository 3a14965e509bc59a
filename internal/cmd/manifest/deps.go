package manifest

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/manifest"
)

// depsOptions holds the flags for the deps command.
type depsOptions struct {
	prefs cmdutil.PrefsFlags
	write cmdutil.WriteFlags
}

// NewDepsCmd creates the manifest deps command.
func NewDepsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &depsOptions{}

	c := &cobra.Command{
		Use:   "deps [FILE]",
		Short: "Write target device families from preferences",
		Long: `Resolve the target device family version ranges from a preference file
and replace the TargetDeviceFamily entries under <Dependencies>. Other
dependencies are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDeps(c, cfg, opts, args)
		},
	}

	opts.prefs.AddTo(c)
	opts.write.AddTo(c)

	return c
}

func runDeps(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *depsOptions, args []string) error {
	ranges, err := cmdutil.ResolveRanges(opts.prefs.Path(cfg))
	if err != nil {
		return cmdutil.ReportError("resolving versions", err)
	}

	m, err := loadManifest(cfg, args)
	if err != nil {
		return err
	}
	m.SetDependencies(ranges)

	return writeBack(c, []*manifest.Manifest{m}, opts.write.DryRun)
}
