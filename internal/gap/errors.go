// Package gap converts raw skill comparisons into ranked, time-estimated,
// phased skill-development plans.
package gap

import "fmt"

// InvalidInputError reports a malformed numeric input. The scoring functions
// fail fast on bad preconditions instead of propagating NaN or Infinity.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
