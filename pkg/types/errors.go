package types

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the catalog source is missing.
var ErrNotFound = errors.New("not found")

// ParseError marks a catalog line that is not valid JSON.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid json on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError marks invalid request parameters.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
