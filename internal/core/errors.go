package core

import (
	"errors"
	"fmt"
)

// Reasons reported by MappingError. The texts are matched by MapError.
const (
	ReasonMissing = "missing required field"
	ReasonEnum    = "unknown enum value"
	ReasonFormat  = "invalid format"
	ReasonConvert = "cannot convert value"
)

// MappingError reports a field that could not be transcoded.
type MappingError struct {
	Table  string // Table key, empty when raised outside a table
	Field  string // Wire field name
	Value  any    // Offending value, nil for missing fields
	Reason string // One of the Reason* constants
	Err    error  // Underlying cause, if any
}

func (e *MappingError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("field %s: %s", e.Field, msg)
	}
	if e.Table != "" {
		msg = e.Table + ": " + msg
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value %q)", ToString(e.Value))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// FormatError builds a MappingError for a value with the wrong shape, e.g.
// a color that is not eight hex characters.
func FormatError(value any, format string, args ...any) *MappingError {
	return &MappingError{
		Value:  value,
		Reason: ReasonFormat,
		Err:    fmt.Errorf(format, args...),
	}
}

// FieldError is one field skipped by a best-effort copy.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// CopyReport lists the fields a best-effort copy could not convert. Skipped
// fields keep their prior value in the output.
type CopyReport struct {
	Table   string
	Skipped []FieldError
}

// OK reports whether every field was copied.
func (r CopyReport) OK() bool {
	return len(r.Skipped) == 0
}

// Err joins the skipped field errors, or returns nil when nothing was skipped.
func (r CopyReport) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Skipped))
	for i, s := range r.Skipped {
		errs[i] = s.Err
	}
	return errors.Join(errs...)
}
