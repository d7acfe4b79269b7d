// Package courses ranks external course offerings against prioritized skill
// gaps and produces trackable affiliate links.
package courses

import "fmt"

// InvalidInputError reports a malformed input to the ranking or link
// construction functions.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
