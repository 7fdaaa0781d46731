package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for empty provider responses.
var (
	errNoCandidates = errors.New("no candidates in response")
	errNoContent    = errors.New("no content in response")
	errNoTextParts  = errors.New("no text parts in response")
)

// ConfigError reports a client that cannot be constructed, usually a missing
// API key or an unconfigured model tier.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm config error: %s", e.Reason)
}

// RequestError wraps a provider call failure.
type RequestError struct {
	Model string
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("llm request to %s failed: %v", e.Model, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError reports a provider response that could not be decoded into the
// expected structured result.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	preview := e.Raw
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	return fmt.Sprintf("failed to parse llm response: %v (response starts: %q)", e.Err, preview)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldsError reports a decoded result that lacks required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("llm result missing required fields: %s", strings.Join(e.Fields, ", "))
}
