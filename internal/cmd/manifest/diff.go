package manifest

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	"github.com/winpack/cli/internal/output"
)

// NewDiffCmd creates the manifest diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff FROM TO",
		Short: "Compare the managed fields of two manifests",
		Long: `Compare the summaries of two manifests field by field. Only the fields
winpack manages are compared; formatting and unrelated elements are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, cfg, args[0], args[1])
		},
	}
}

func runDiff(c *cobra.Command, cfg *cmdtypes.GlobalConfig, from, to string) error {
	fromDoc, err := summaryYAML(cfg, from)
	if err != nil {
		return err
	}
	toDoc, err := summaryYAML(cfg, to)
	if err != nil {
		return err
	}

	report, err := output.StructuralDiff(from, to, fromDoc, toDoc, output.UseColor(os.Stdout))
	if err != nil {
		return cmdutil.ReportError("comparing manifests", err)
	}
	if report == "" {
		fmt.Fprintln(c.OutOrStdout(), output.StyleSummary.Render("No differences"))
		return nil
	}
	fmt.Fprintln(c.OutOrStdout(), report)
	return nil
}

// summaryYAML renders the summary of the manifest at path without its path,
// so two files compare by content only.
func summaryYAML(cfg *cmdtypes.GlobalConfig, path string) ([]byte, error) {
	m, err := loadManifest(cfg, []string{path})
	if err != nil {
		return nil, err
	}

	s, err := m.Summary()
	if err != nil {
		return nil, cmdutil.ReportError("reading manifest", err)
	}
	s.Path = ""

	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling summary: %w", err)
	}
	return data, nil
}
