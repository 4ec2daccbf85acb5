// Package config loads dym configuration from TOML files, environment
// variables, and defaults via Viper.
package config

// Config represents the dym configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Suggest  SuggestConfig  `mapstructure:"suggest"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SuggestConfig configures suggestion lookups
type SuggestConfig struct {
	Table  string   `mapstructure:"table"`  // table to suggest from
	Fields []string `mapstructure:"fields"` // columns to match against

	// Threshold fixes the edit-distance tolerance for every lookup.
	// Negative means derive it from the word's length.
	Threshold int `mapstructure:"threshold"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}
