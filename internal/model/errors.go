package model

import "fmt"

// MissingParameterError is returned when a required assumption key is absent.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Key)
}

// InvalidModelError reports a configuration whose results would be undefined
// (division by zero, non-finite values).
type InvalidModelError struct {
	Reason string
}

func (e *InvalidModelError) Error() string {
	return "invalid model: " + e.Reason
}

// MalformedInputError reports a record missing an expected field or carrying
// a value that is not a usable number.
// Row is 1-based; 0 means the error is not tied to a row.
type MalformedInputError struct {
	Field  string
	Row    int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("malformed input: field %q (row %d): %s", e.Field, e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed input: field %q: %s", e.Field, e.Reason)
}
