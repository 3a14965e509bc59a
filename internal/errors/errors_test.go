//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrValidation, ErrNotFound, ErrFormat, ErrUnsupportedVersion, ErrValue, ErrNumericRange}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotEqual(t, all[i], all[j])
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "invalid manifest format",
		Message:  "missing element",
		Location: "/path/to/package.windows10.appxmanifest",
		Field:    "Identity",
		Context:  map[string]string{"b": "2", "a": "1"},
		Hint:     "Regenerate the manifest",
	}

	out := detail.Error()

	assert.Contains(t, out, "invalid manifest format: missing element")
	assert.Contains(t, out, "(/path/to/package.windows10.appxmanifest)")
	assert.Contains(t, out, "[Identity]")
	assert.Contains(t, out, "a=1 b=2")
	assert.Contains(t, out, "Hint: Regenerate the manifest")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrFormat}

	assert.True(t, errors.Is(detail, ErrFormat))
	assert.Equal(t, ErrFormat, detail.Unwrap())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"format", NewFormatError("root is not Package", "a.appxmanifest", "Package"), ErrFormat, "a.appxmanifest"},
		{"unsupported", NewUnsupportedVersionError("b.appxmanifest", ""), ErrUnsupportedVersion, "b.appxmanifest"},
		{"value", NewValueError("Identity@Name", "must not be empty"), ErrValue, "Identity@Name"},
		{"numeric", NewNumericRangeError("10.0.x.0", "x"), ErrNumericRange, `"x"`},
		{"not found", NewNotFoundError("no file", "c.xml", "create it"), ErrNotFound, "c.xml"},
		{"validation", NewValidationError("bad", "config.yaml", "output", ""), ErrValidation, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", NewExitError(errors.New("x"), 42), 42},
		{"value", NewValueError("f", "m"), ExitValidationError},
		{"numeric", fmt.Errorf("resolving: %w", NewNumericRangeError("1", "1")), ExitValidationError},
		{"not found", Wrap(ErrNotFound, "missing"), ExitNotFound},
		{"unsupported", NewUnsupportedVersionError("p", ""), ExitUnsupportedVersion},
		{"format", NewFormatError("m", "p", "f"), ExitFormatError},
		{"general", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Format Error", ExitCodeName(ExitFormatError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
