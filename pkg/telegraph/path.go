package telegraph

import (
	"fmt"
	"regexp"
)

// pathPattern accepts a bare page path or a full telegra.ph / telegraph.com
// URL and captures the trailing path component.
//
//nolint:gochecknoglobals // Compiled once; read-only.
var pathPattern = regexp.MustCompile(`^(?:https?://(?:telegra\.ph/|telegraph\.com/))?([^/\s]+)/?$`)

// ExtractPath returns the page path from a Telegraph URL or path string.
func ExtractPath(pathOrURL string) (string, error) {
	m := pathPattern.FindStringSubmatch(pathOrURL)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, pathOrURL)
	}
	return m[1], nil
}
