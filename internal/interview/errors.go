package interview

import "fmt"

// ErrValidation indicates the submitted content or source cannot produce
// an interview.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
