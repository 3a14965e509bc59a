package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// UnifiedDiff returns a unified diff of two texts, or "" when they are equal.
// With styles, added and removed lines are colored.
func UnifiedDiff(fromName, toName string, from, to []byte, styles *Styles) string {
	if bytes.Equal(from, to) {
		return ""
	}

	diff := udiff.Unified(fromName, toName, string(from), string(to))
	if styles == nil {
		return diff
	}

	lines := strings.SplitAfter(diff, "\n")
	var sb strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			sb.WriteString(StyleSummary.Render(body))
		case strings.HasPrefix(body, "@@"):
			sb.WriteString(styles.Dim.Render(body))
		case strings.HasPrefix(body, "+"):
			sb.WriteString(styles.Success.Render(body))
		case strings.HasPrefix(body, "-"):
			sb.WriteString(styles.Error.Render(body))
		default:
			sb.WriteString(body)
		}
		sb.WriteString(nl)
	}
	return sb.String()
}

// StructuralDiff compares two YAML documents with dyff and renders the
// report, or returns "" when they match.
func StructuralDiff(fromName, toName string, from, to []byte, useColor bool) (string, error) {
	fromInput, err := yamlInput(fromName, from)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", fromName, err)
	}
	toInput, err := yamlInput(toName, to)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", toName, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// yamlInput parses YAML bytes into a dyff input file.
func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

// DiffSummary returns e.g. "2 changed, 1 unchanged".
func DiffSummary(changed, unchanged int) string {
	if changed == 0 {
		return "No changes"
	}
	parts := []string{fmt.Sprintf("%d changed", changed)}
	if unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", unchanged))
	}
	return strings.Join(parts, ", ")
}
