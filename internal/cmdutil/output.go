package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/uap"
)

// PrintError logs err with msg. Detail errors are split into their parts so
// the hint is readable.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		output.Error(msg, "error", err)
		return
	}

	keyvals := []interface{}{"error", detail.Message}
	if detail.Location != "" {
		keyvals = append(keyvals, "path", detail.Location)
	}
	if detail.Field != "" {
		keyvals = append(keyvals, "field", detail.Field)
	}
	output.Error(fmt.Sprintf("%s: %s", msg, detail.Type), keyvals...)
	if detail.Hint != "" {
		output.Info(detail.Hint)
	}
}

// RangeTable renders version ranges as a table.
func RangeTable(ranges []uap.VersionRange) string {
	t := output.NewTable("FAMILY", "MIN VERSION", "MAX VERSION TESTED")
	for _, r := range ranges {
		t.Row(r.Name, r.MinVersion.String(), r.MaxVersionTested.String())
	}
	return t.String()
}

// CapabilityTable renders capabilities, marking restricted ones.
func CapabilityTable(caps []manifest.Capability) string {
	t := output.NewTable("TYPE", "NAME", "RESTRICTED")
	for _, c := range caps {
		restricted := ""
		if manifest.RestrictedCapabilities[c.Name] {
			restricted = "yes"
		}
		t.Row(c.Type, c.Name, restricted)
	}
	return t.String()
}

// WriteRanges writes ranges in the given format.
func WriteRanges(w io.Writer, ranges []uap.VersionRange, format output.Format) error {
	if format == output.FormatTable {
		_, err := fmt.Fprintln(w, RangeTable(ranges))
		return err
	}
	return output.WriteValue(w, ranges, format)
}

// WriteSummary writes a manifest summary in the given format.
func WriteSummary(w io.Writer, s *manifest.Summary, format output.Format) error {
	if format != output.FormatTable {
		return output.WriteValue(w, s, format)
	}

	info := output.NewTable("FIELD", "VALUE").
		Row("Path", s.Path).
		Row("Name", s.Identity.Name).
		Row("Publisher", s.Identity.Publisher).
		Row("Version", s.Identity.Version).
		Row("Display name", s.Properties.DisplayName).
		Row("Publisher display name", s.Properties.PublisherDisplayName).
		Row("Application id", s.Application.ID).
		Row("Start page", s.Application.StartPage).
		Row("Background color", s.Application.BackgroundColor).
		Row("Orientation", s.Application.Orientation)
	if len(s.Application.AccessRules) > 0 {
		info.Row("Access rules", strings.Join(s.Application.AccessRules, "\n"))
	}

	sections := []string{info.String()}
	if len(s.Dependencies) > 0 {
		sections = append(sections, RangeTable(s.Dependencies))
	}
	if len(s.Capabilities) > 0 {
		sections = append(sections, CapabilityTable(s.Capabilities))
	}
	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

// ReportError logs err and wraps it in an ExitError marked as printed, with
// the exit code derived from the error type.
func ReportError(msg string, err error) error {
	PrintError(msg, err)
	return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
}
