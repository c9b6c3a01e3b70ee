package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldFile  = "file"
	FieldPath  = "path"
	FieldURL   = "url"
	FieldTitle = "title"

	// API call fields.
	FieldEndpoint = "endpoint"
	FieldMethod   = "method"
	FieldAttempt  = "attempt"

	// Account fields.
	FieldShortName  = "short_name"
	FieldAuthorName = "author_name"
	FieldTokenPath  = "token_path"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
