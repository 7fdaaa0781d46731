// Package schema validates ResumeMaster documents against structural
// invariants before they reach the tailoring pipeline.
package schema

import (
	"fmt"
	"strings"
)

// Violation is a single structural problem at a specific field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in a document, not just
// the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume master validation failed:\n")
	for i, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, v.Field, v.Message))
	}
	return sb.String()
}
