// Package export converts rendered résumés into print formats.
package export

import "fmt"

// Error represents a failed export
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
