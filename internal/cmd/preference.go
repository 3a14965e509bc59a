package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/prefs"
)

// preferenceValue is the structured form of one resolved preference.
type preferenceValue struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewPreferenceCmd creates the preference command.
func NewPreferenceCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &cmdutil.PrefsFlags{}

	c := &cobra.Command{
		Use:   "preference NAME",
		Short: "Print the effective value of a preference",
		Long: `Print the effective value of one preference from a preference file.

When a name is set more than once the last value wins, so platform
preferences in config.xml override global ones.

Examples:
  winpack preference Windows.Universal-MinVersion
  winpack preference WindowsStoreIdentityName --preferences config.xml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPreference(c, cfg, flags, args[0])
		},
	}

	flags.AddTo(c)

	return c
}

func runPreference(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.PrefsFlags, name string) error {
	path := flags.Path(cfg)
	list, err := prefs.Load(path)
	if err != nil {
		return cmdutil.ReportError("loading preferences", err)
	}

	value, ok := prefs.Lookup(list, name)
	if !ok {
		return cmdutil.ReportError("looking up preference", oerrors.NewNotFoundError(
			fmt.Sprintf("preference %q is not set", name), path, ""))
	}

	format := cmdutil.OutputFormat(cfg)
	if format == output.FormatTable {
		_, err := fmt.Fprintln(c.OutOrStdout(), value)
		return err
	}
	return output.WriteValue(c.OutOrStdout(), preferenceValue{Name: name, Value: value}, format)
}
