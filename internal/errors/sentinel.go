package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a configuration schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a manifest, preference source, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrFormat indicates a manifest whose structure does not match the
	// expected document shape (wrong root tag or a missing required element).
	ErrFormat = errors.New("format error")

	// ErrUnsupportedVersion indicates a manifest that lacks the namespace
	// declaration of the supported manifest variant.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")

	// ErrValue indicates an empty or malformed value where the schema
	// requires a usable one.
	ErrValue = errors.New("invalid value")

	// ErrNumericRange indicates a version component that is not a
	// non-negative integer.
	ErrNumericRange = errors.New("numeric range error")
)
