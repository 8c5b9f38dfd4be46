// Package taxonomy loads and validates the static career catalog.
package taxonomy

import "fmt"

// LoadError represents an error during file I/O or JSON parsing of the
// catalog document.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EntryError represents a validation failure on a single catalog entry.
// Any EntryError aborts the load: a malformed catalog is a deployment
// error, not a user input error.
type EntryError struct {
	Index   int
	ID      string
	Message string
	Cause   error
}

func (e *EntryError) Error() string {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("entry %d", e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("catalog entry %s: %s: %v", id, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog entry %s: %s", id, e.Message)
}

func (e *EntryError) Unwrap() error {
	return e.Cause
}
