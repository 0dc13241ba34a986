package ingestion

import "fmt"

// LoadError represents an error reading or decoding a profile file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
