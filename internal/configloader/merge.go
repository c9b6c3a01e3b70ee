package configloader

// merge combines two configurations, with override taking precedence over
// base. All fields are scalar strings: override wins when non-empty, unset
// values in override never clear values in base.
func merge(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.ShortName != "" {
		result.ShortName = override.ShortName
	}
	if override.AuthorName != "" {
		result.AuthorName = override.AuthorName
	}
	if override.AuthorURL != "" {
		result.AuthorURL = override.AuthorURL
	}
	if override.BaseURL != "" {
		result.BaseURL = override.BaseURL
	}
	if override.TokenPath != "" {
		result.TokenPath = override.TokenPath
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	return &result
}
