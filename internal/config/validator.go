package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/winpack/cli/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks a loaded configuration.
func (v *Validator) Validate(cfg *Config) error {
	return v.validate(v.ctx.Encode(cfg), "")
}

// ValidateFile checks the raw YAML at path, so unknown keys are reported
// instead of being dropped by decoding.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("config file not found", path,
				"Run 'winpack config init' to create one")
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return oerrors.NewValidationError(fmt.Sprintf("invalid YAML: %v", err), path, "", "")
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return v.validate(v.ctx.Encode(raw), path)
}

func (v *Validator) validate(value cue.Value, location string) error {
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	err := v.schema.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	field := ""
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		field = strings.Join(errs[0].Path(), ".")
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("config does not match schema: %s", strings.TrimSpace(cueerrors.Details(err, nil))),
		location,
		field,
		"See 'winpack config init' for a valid example")
}
