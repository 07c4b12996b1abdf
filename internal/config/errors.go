package config

import "fmt"

// MissingParameterError is returned when a required parameter has no value.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("'%s' parameter must be provided", e.Name)
}

// ValidationError is returned when a parameter has an unusable value.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
