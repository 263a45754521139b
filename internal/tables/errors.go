package tables

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound  = errors.New("source not found")
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError locates a field that failed to parse or validate.
// Line is 1-based and counts the header.
type RecordError struct {
	Path  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %v: field %s=%q: %v", loc, ErrMalformedRecord, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }
