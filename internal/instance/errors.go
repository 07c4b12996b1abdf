package instance

import "fmt"

// SourceReadError reports that the instance source could not be read.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read instances from %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// ParseError reports that the instance source is not a valid instance list.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse instances from %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no instance carries the expected name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("instance '%s' not found", e.Name)
}

// MalformedInstanceError reports an instance without the network layout
// machines are built from.
type MalformedInstanceError struct {
	Name  string
	Field string
}

func (e *MalformedInstanceError) Error() string {
	return fmt.Sprintf("instance '%s' is malformed: missing %s", e.Name, e.Field)
}
