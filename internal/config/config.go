// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the fitsmeta CLI configuration, loaded from
// ~/.fitsmeta/config.yaml.
type Config struct {
	// Output is the default report encoding for the inspect command.
	// Env: FITSMETA_OUTPUT. Valid values: "json", "yaml".
	Output string `json:"output,omitempty" mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `fitsmeta config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Output: "json",
	}
}

// DefaultConfigTemplate is the content written by `fitsmeta config init`.
const DefaultConfigTemplate = `# fitsmeta configuration
#
# output: default encoding for the inspect command ("json" or "yaml")
output: json

# log:
#   timestamps: true
`
