package core

// validation.go checks raw spreadsheet cells against the value type of
// their column before they enter a project document.
//
// Cells are read as raw text. An empty cell is always valid and becomes nil.
// Callers collect every ValidationError of a file so the user can fix all
// problems in one pass.

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string // Field/column name
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects the validation errors of a whole file.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d invalid cells:\n  - %s", len(errs), strings.Join(msgs, "\n  - "))
}

// ParseCell converts raw cell text to a document value of type t. Empty
// cells become nil. The NaN sentinel is accepted for numeric columns.
func ParseCell(value string, t ValueType) (any, error) {
	raw := CleanCell(value)
	if raw == "" {
		return nil, nil
	}

	switch t {
	case TypeFloat:
		if IsNaN(raw) {
			return NaN, nil
		}
		f, err := ToFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid number format")
		}
		return f, nil
	case TypeInt:
		if !IsNumeric(raw) {
			return nil, fmt.Errorf("invalid number format")
		}
		return ToInt(raw)
	case TypeBool:
		b, err := ToBool(raw)
		if err != nil {
			return nil, fmt.Errorf("must be true/false, yes/no, or 1/0")
		}
		return b, nil
	default:
		return raw, nil
	}
}
