// Package errors provides the error taxonomy for the winpack CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Field is the element, attribute or key name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Field != "" {
		b.WriteString(" [")
		b.WriteString(e.Field)
		b.WriteString("]")
	}

	// Sorted so messages are stable across runs.
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Context[k])
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewFormatError reports a manifest that does not have the expected shape.
// location names the manifest path, field the offending element.
func NewFormatError(message, location, field string) error {
	return &DetailError{
		Type:     "invalid manifest format",
		Message:  message,
		Location: location,
		Field:    field,
		Cause:    ErrFormat,
	}
}

// NewUnsupportedVersionError reports a manifest of an unsupported variant.
func NewUnsupportedVersionError(location, hint string) error {
	return &DetailError{
		Type:     "unsupported manifest",
		Message:  "manifest is not a Windows 10 package manifest",
		Location: location,
		Hint:     hint,
		Cause:    ErrUnsupportedVersion,
	}
}

// NewValueError reports an unusable value for a manifest field.
func NewValueError(field, message string) error {
	return &DetailError{
		Type:    "invalid value",
		Message: message,
		Field:   field,
		Cause:   ErrValue,
	}
}

// NewNumericRangeError reports a version string with a bad component.
func NewNumericRangeError(value, component string) error {
	return &DetailError{
		Type:    "numeric range",
		Message: fmt.Sprintf("version %q has invalid component %q", value, component),
		Hint:    "Versions use four non-negative integers, e.g. 10.0.10240.0",
		Cause:   ErrNumericRange,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
