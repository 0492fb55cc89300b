package pipeline

import (
	"fmt"
	"strings"
)

// CalculationError reports a failure the calculation engine put into its
// response instead of results.
type CalculationError struct {
	// Rejected is set for an ErrorData response: the engine refused the
	// request before calculating. Otherwise the calculation itself failed
	// and reported _fehlerText.
	Rejected bool
	Messages []string
}

func (e *CalculationError) Error() string {
	prefix := "calculation failed"
	if e.Rejected {
		prefix = "calculation engine error"
	}
	if len(e.Messages) == 0 {
		return prefix
	}
	return fmt.Sprintf("%s: %s", prefix, strings.Join(e.Messages, "; "))
}
