package configloader

import "os"

// envVarPrefix is the prefix for all gotelegraph environment variables.
const envVarPrefix = "GOTELEGRAPH_"

// envMappings maps environment variable names (without prefix) to setters.
// Every config field is a string, which keeps this table flat.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]func(*Config, string){
	"SHORT_NAME":  func(c *Config, v string) { c.ShortName = v },
	"AUTHOR_NAME": func(c *Config, v string) { c.AuthorName = v },
	"AUTHOR_URL":  func(c *Config, v string) { c.AuthorURL = v },
	"BASE_URL":    func(c *Config, v string) { c.BaseURL = v },
	"TOKEN_PATH":  func(c *Config, v string) { c.TokenPath = v },
	"LOG_LEVEL":   func(c *Config, v string) { c.LogLevel = v },
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOTELEGRAPH_ (e.g., GOTELEGRAPH_AUTHOR_NAME).
func LoadFromEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	for suffix, set := range envMappings {
		if value := os.Getenv(envVarPrefix + suffix); value != "" {
			set(cfg, value)
		}
	}
}
