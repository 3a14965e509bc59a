package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/config"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the winpack configuration file",
		Long: `Validate the winpack configuration file against the internal schema.

The command validates the configuration file at ~/.winpack/config.yaml by
default. Use --config flag or WINPACK_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	expandedPath, err := configFilePath(cfg)
	if err != nil {
		return err
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		return cmdutil.ReportError("config validation failed", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
