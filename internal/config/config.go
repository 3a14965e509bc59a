// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the winpack configuration.
// Loaded from ~/.winpack/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// ProjectDir is the directory holding the manifests.
	// Env: WINPACK_PROJECT_DIR, Default: "."
	ProjectDir string `json:"projectDir,omitempty" yaml:"projectDir,omitempty"`

	// Manifest is the manifest file name, relative to ProjectDir.
	// Env: WINPACK_MANIFEST, Default: package.windows10.appxmanifest
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Preferences is the preference file (config.xml, YAML or TOML).
	// Env: WINPACK_PREFERENCES, Default: config.xml
	Preferences string `json:"preferences,omitempty" yaml:"preferences,omitempty"`

	// Output is the default output format: table, yaml or json.
	// Env: WINPACK_OUTPUT, Default: table
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// Built-in defaults.
const (
	DefaultProjectDir  = "."
	DefaultManifest    = "package.windows10.appxmanifest"
	DefaultPreferences = "config.xml"
	DefaultOutput      = "table"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `winpack config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		ProjectDir:  DefaultProjectDir,
		Manifest:    DefaultManifest,
		Preferences: DefaultPreferences,
		Output:      DefaultOutput,
		Log:         LogConfig{Timestamps: &timestamps},
	}
}
