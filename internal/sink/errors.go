package sink

import "fmt"

// WriteError reports that the manifest could not be written to its target.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write manifest to %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no manifest exists at the target.
type NotFoundError struct {
	Target string
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest %s not found", e.Target)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
