// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/manifest, internal/cmd/config).
package cmdtypes

import (
	"path/filepath"

	"github.com/winpack/cli/internal/config"
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/manifest"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file; empty when no file exists.
	Config *config.Config

	ConfigPath  string // resolved --config path
	ConfigFlag  string // raw --config flag value (needed by config init/vet)
	ProjectDir  string // resolved --project-dir
	Manifest    string // resolved --manifest file name
	Preferences string // resolved --preferences path
	Output      string // resolved --output format
	Verbose     bool

	// Cache is shared by every command of one invocation.
	Cache *manifest.Cache
}

// ManifestPath returns the manifest named by args, or the configured manifest
// under the project directory.
func (g *GlobalConfig) ManifestPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return filepath.Join(g.ProjectDir, g.Manifest)
}

// ManifestCache returns the shared cache, creating it on first use.
func (g *GlobalConfig) ManifestCache() *manifest.Cache {
	if g.Cache == nil {
		g.Cache = manifest.NewCache()
	}
	return g.Cache
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess            = oerrors.ExitSuccess
	ExitGeneralError       = oerrors.ExitGeneralError
	ExitValidationError    = oerrors.ExitValidationError
	ExitNotFound           = oerrors.ExitNotFound
	ExitUnsupportedVersion = oerrors.ExitUnsupportedVersion
	ExitFormatError        = oerrors.ExitFormatError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
