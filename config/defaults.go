package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "dym.db")

	// Suggestion defaults
	v.SetDefault("suggest.table", "")
	v.SetDefault("suggest.fields", []string{})
	v.SetDefault("suggest.threshold", -1) // derive from word length

	// Logging defaults
	v.SetDefault("log.json", false)
}
