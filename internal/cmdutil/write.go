package cmdutil

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
)

// WriteResult is the outcome of writing one manifest.
type WriteResult struct {
	Path    string
	Changed bool

	// Diff is set in dry-run mode when the manifest changed.
	Diff string
}

// DiffStyles returns colored diff styles when stdout is a terminal, else nil.
func DiffStyles() *output.Styles {
	if !output.UseColor(os.Stdout) {
		return nil
	}
	return output.GetStyles()
}

// WriteManifests renders each manifest and compares it with the file on disk.
// Changed manifests are written back unless dryRun is set, in which case a
// unified diff is recorded instead. styles may be nil for uncolored diffs.
func WriteManifests(ms []*manifest.Manifest, dryRun bool, styles *output.Styles) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(ms))
	for _, m := range ms {
		before, err := os.ReadFile(m.Path())
		if err != nil && !os.IsNotExist(err) {
			return results, fmt.Errorf("reading %s: %w", m.Path(), err)
		}

		after, err := m.Bytes()
		if err != nil {
			return results, fmt.Errorf("rendering %s: %w", m.Path(), err)
		}

		r := WriteResult{Path: m.Path(), Changed: !bytes.Equal(before, after)}
		switch {
		case dryRun:
			r.Diff = output.UnifiedDiff("a/"+m.Path(), "b/"+m.Path(), before, after, styles)
		case r.Changed:
			if err := m.Write(""); err != nil {
				return results, fmt.Errorf("writing %s: %w", m.Path(), err)
			}
		}
		results = append(results, r)
	}
	return results, nil
}

// PrintWriteResults prints one status line per manifest, or the diffs in
// dry-run mode, followed by a summary line.
func PrintWriteResults(w io.Writer, results []WriteResult, dryRun bool) {
	changed := 0
	for _, r := range results {
		if r.Changed {
			changed++
		}

		if dryRun {
			if r.Diff != "" {
				fmt.Fprint(w, r.Diff)
			}
			continue
		}

		status := output.StatusUnchanged
		if r.Changed {
			status = output.StatusWritten
		}
		fmt.Fprintln(w, output.FormatManifestLine(r.Path, status))
	}

	summary := output.DiffSummary(changed, len(results)-changed)
	if dryRun {
		summary = "Dry run: " + summary
	}
	fmt.Fprintln(w, output.StyleSummary.Render(summary))
}
