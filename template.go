package afuzz

import (
	"errors"
	"net/url"
	"strings"
)

// Placeholder is the literal marker for the substitution point in a URL template.
const Placeholder = "@"

var (
	// ErrInvalidURL is returned when a template does not parse into a URL with a scheme and host.
	ErrInvalidURL = errors.New("base URL must have a scheme and host")

	// ErrMissingPlaceholder is returned when a template contains no substitution point.
	ErrMissingPlaceholder = errors.New("base URL must contain a placeholder '@'")
)

// Template is a URL pattern containing at least one @ placeholder.
type Template struct {
	raw string
}

// ParseTemplate validates a candidate template string.
// It does not check that the target is reachable, only that the string is an
// absolute URL and has somewhere to put a payload.
func ParseTemplate(raw string) (*Template, error) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidURL
	}

	if !strings.Contains(raw, Placeholder) {
		return nil, ErrMissingPlaceholder
	}

	return &Template{raw: raw}, nil
}

// Expand replaces every placeholder in the template with payload.
// An empty payload produces the template with the placeholder removed.
func (t *Template) Expand(payload string) string {
	return strings.ReplaceAll(t.raw, Placeholder, payload)
}

// String returns the unexpanded template.
func (t *Template) String() string {
	return t.raw
}
