// Package config provides configuration structures and loading for Monkey Explorer.
package config

// Config represents the complete application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// DisplayConfig represents terminal rendering settings.
type DisplayConfig struct {
	Color       bool `yaml:"color" mapstructure:"color"`
	WrapWidth   int  `yaml:"wrap_width" mapstructure:"wrap_width"`   // column width for details text
	Suggestions int  `yaml:"suggestions" mapstructure:"suggestions"` // names offered when a lookup misses
	Pause       bool `yaml:"pause" mapstructure:"pause"`             // wait for Enter between menu actions
}

// CatalogConfig represents catalog behaviour settings.
type CatalogConfig struct {
	Seed int64 `yaml:"seed" mapstructure:"seed"` // 0 picks a random seed per session
}

// MetricsConfig represents session metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" mapstructure:"textfile"` // Prometheus textfile written at session end; empty disables
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:       true,
			WrapWidth:   55,
			Suggestions: 5,
			Pause:       true,
		},
		Catalog: CatalogConfig{
			Seed: 0,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
