package configloader

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "base_url").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Validate checks a resolved configuration and returns every problem found.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Host == "" || !strings.HasPrefix(u.Scheme, "http") {
			errs = append(errs, ValidationError{
				Field:   "base_url",
				Value:   cfg.BaseURL,
				Message: fmt.Sprintf("not a valid http(s) URL: %q", cfg.BaseURL),
			})
		}
	}

	if cfg.AuthorURL != "" {
		u, err := url.Parse(cfg.AuthorURL)
		if err != nil || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "author_url",
				Value:   cfg.AuthorURL,
				Message: fmt.Sprintf("not a valid URL: %q", cfg.AuthorURL),
			})
		}
	}

	if cfg.LogLevel != "" {
		if _, ok := validLogLevels[strings.ToLower(cfg.LogLevel)]; !ok {
			errs = append(errs, ValidationError{
				Field:   "log_level",
				Value:   cfg.LogLevel,
				Message: fmt.Sprintf("unknown level %q (expected debug, info, warn, or error)", cfg.LogLevel),
			})
		}
	}

	return errs
}
