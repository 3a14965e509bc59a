// Package cmdutil provides shared command utilities for manifest subcommands.
// It centralizes flag groups, preference resolution, manifest write-back and
// output formatting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/output"
)

// PrefsFlags holds the preference file flag (versions, manifest deps).
type PrefsFlags struct {
	Preferences string
}

// AddTo registers the preference flag on the given cobra command.
func (f *PrefsFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Preferences, "preferences", "p", "",
		"Preference file: config.xml, YAML or TOML (default: from config)")
}

// Path returns the flag value, falling back to the resolved global setting.
func (f *PrefsFlags) Path(cfg *cmdtypes.GlobalConfig) string {
	if f.Preferences != "" {
		return f.Preferences
	}
	return cfg.Preferences
}

// WriteFlags holds flags for commands that rewrite manifests
// (set, deps, apply, normalize).
type WriteFlags struct {
	DryRun bool
}

// AddTo registers the write flags on the given cobra command.
func (f *WriteFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print a unified diff instead of writing")
}

// OutputFormat parses the resolved output format, defaulting to table for
// unknown values.
func OutputFormat(cfg *cmdtypes.GlobalConfig) output.Format {
	f, ok := output.ParseFormat(cfg.Output)
	if !ok {
		return output.FormatTable
	}
	return f
}
