// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cmdconfig "github.com/winpack/cli/internal/cmd/config"
	cmdmanifest "github.com/winpack/cli/internal/cmd/manifest"
	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/config"
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
)

// Environment variables consulted after the flags.
const (
	envProjectDir  = "WINPACK_PROJECT_DIR"
	envManifest    = "WINPACK_MANIFEST"
	envPreferences = "WINPACK_PREFERENCES"
	envOutput      = "WINPACK_OUTPUT"
)

// rootFlags holds the raw persistent flag values.
type rootFlags struct {
	config     string
	projectDir string
	manifest   string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the winpack CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{Cache: manifest.NewCache()}

	rootCmd := &cobra.Command{
		Use:   "winpack",
		Short: "Windows package manifest tool",
		Long: `winpack resolves and edits Windows package manifests (appxmanifest).

It computes target device family version ranges from project preferences,
edits identity, properties and visual elements, normalizes capabilities and
grafts XML change lists into the manifests of a project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: WINPACK_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.projectDir, "project-dir", "", "Directory holding the manifests (env: WINPACK_PROJECT_DIR)")
	rootCmd.PersistentFlags().StringVar(&flags.manifest, "manifest", "", "Manifest file name in the project directory (env: WINPACK_MANIFEST)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: "+strings.Join(output.ValidFormats(), ", ")+" (env: WINPACK_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		cmdmanifest.NewManifestCmd(cfg),
		cmdconfig.NewConfigCmd(cfg),
		NewVersionsCmd(cfg),
		NewPreferenceCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads the config file, resolves every setting and sets up
// logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	resolved := []config.ResolvedValue{
		configPath,
		config.ResolveValue(config.ResolveOptions{
			Key:         "projectDir",
			FlagValue:   flags.projectDir,
			EnvVar:      envProjectDir,
			ConfigValue: loaded.ProjectDir,
			Default:     config.DefaultProjectDir,
		}),
		config.ResolveValue(config.ResolveOptions{
			Key:         "manifest",
			FlagValue:   flags.manifest,
			EnvVar:      envManifest,
			ConfigValue: loaded.Manifest,
			Default:     config.DefaultManifest,
		}),
		// --preferences is a per-command flag; see cmdutil.PrefsFlags.
		config.ResolveValue(config.ResolveOptions{
			Key:         "preferences",
			EnvVar:      envPreferences,
			ConfigValue: loaded.Preferences,
			Default:     config.DefaultPreferences,
		}),
		config.ResolveValue(config.ResolveOptions{
			Key:         "output",
			FlagValue:   flags.output,
			EnvVar:      envOutput,
			ConfigValue: loaded.Output,
			Default:     config.DefaultOutput,
		}),
	}

	cfg.Config = loaded
	cfg.ConfigFlag = flags.config
	cfg.ConfigPath = resolved[0].Value
	cfg.ProjectDir = resolved[1].Value
	cfg.Manifest = resolved[2].Value
	cfg.Preferences = resolved[3].Value
	cfg.Output = resolved[4].Value
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(resolved)

	if _, ok := output.ParseFormat(cfg.Output); !ok {
		err := oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", cfg.Output),
			"", "output",
			"use one of: "+strings.Join(output.ValidFormats(), ", "),
		)
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	return nil
}
