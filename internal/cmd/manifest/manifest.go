// Package manifest provides the `winpack manifest` command group.
package manifest

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/manifest"
)

// NewManifestCmd creates the manifest command group.
func NewManifestCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "manifest",
		Short: "Manifest operations",
		Long: `Commands for inspecting and editing Windows package manifests.

FILE defaults to the configured manifest (--manifest) in the project
directory (--project-dir).`,
	}

	c.AddCommand(
		NewShowCmd(cfg),
		NewSetCmd(cfg),
		NewDepsCmd(cfg),
		NewApplyCmd(cfg),
		NewNormalizeCmd(cfg),
		NewDiffCmd(cfg),
	)

	return c
}

// loadManifest returns the manifest named by args through the shared cache.
func loadManifest(cfg *cmdtypes.GlobalConfig, args []string) (*manifest.Manifest, error) {
	m, err := cfg.ManifestCache().Get(cfg.ManifestPath(args), false)
	if err != nil {
		return nil, cmdutil.ReportError("loading manifest", err)
	}
	return m, nil
}

// writeBack writes ms, or prints their diffs when dryRun is set.
func writeBack(c *cobra.Command, ms []*manifest.Manifest, dryRun bool) error {
	results, err := cmdutil.WriteManifests(ms, dryRun, cmdutil.DiffStyles())
	if err != nil {
		return cmdutil.ReportError("writing manifests", err)
	}
	cmdutil.PrintWriteResults(c.OutOrStdout(), results, dryRun)
	return nil
}
