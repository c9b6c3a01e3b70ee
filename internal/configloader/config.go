// Package configloader provides configuration loading and resolution for the
// gotelegraph CLI. It discovers config files in standard locations, merges
// them hierarchically, and applies environment and CLI overrides.
package configloader

// Log levels accepted by the log_level field.
//
//nolint:gochecknoglobals // Read-only lookup table.
var validLogLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {},
}

// Config holds the resolved CLI configuration.
type Config struct {
	// ShortName is used when an account is created lazily.
	ShortName string `yaml:"short_name"`

	// AuthorName is the default byline for new pages.
	AuthorName string `yaml:"author_name"`

	// AuthorURL is the default byline link for new pages.
	AuthorURL string `yaml:"author_url"`

	// BaseURL overrides the Telegraph API endpoint.
	BaseURL string `yaml:"base_url"`

	// TokenPath overrides the access-token file location.
	TokenPath string `yaml:"token_path"`

	// LogLevel sets the logger verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		ShortName:  "Your Name",
		AuthorName: "Anonymous",
		LogLevel:   "info",
	}
}
