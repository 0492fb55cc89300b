// # Error Codes Reference
//
// This file defines operator-facing error messages with codes for support
// reference. When a conversion fails, the CLI prints the code next to the
// message so users can quote it.
//
// Error codes are grouped by category:
//
// # Mapping Errors (MAP001-MAP099)
//
// Errors raised while transcoding a single field:
//
//	MAP001 - Missing field: A required field has no value
//	         Action: Fill in the field or remove the record
//	         Patterns: "missing required field"
//
//	MAP002 - Unknown value: A code is not in the list of known values
//	         Action: Check the pile type or concrete grade against the catalog
//	         Patterns: "unknown enum value"
//
//	MAP003 - Invalid value: A value has the wrong format or type
//	         Action: Check colors (8 hex digits) and numeric columns
//	         Patterns: "invalid format", "cannot convert value", "invalid cells"
//
// # Structure Errors (STR001-STR099)
//
// Errors raised when a document does not have the expected shape:
//
//	STR001 - Unexpected structure: The document layout is not recognized
//	         Action: Make sure the file was exported by a supported version
//	         Patterns: "unexpected document shape"
//
//	STR002 - Sheet layout: Soil profile sheets could not be paired
//	         Action: Every soil layer sheet needs a "<Profile>-Info" sheet after it
//	         Patterns: "sheet boundary", "sheet layout"
//
//	STR003 - Duplicate sheet: Two groups would be written to the same sheet
//	         Action: Give every soil profile and load case a unique name
//	         Patterns: "duplicate sheet name"
//
// # Unit Errors (CNV001-CNV099)
//
//	CNV001 - Unit conversion: A scaled field holds a non-numeric value
//	         Action: Enter a number or leave the cell empty
//	         Patterns: "cannot scale"
//
// # Calculation Errors (CALC001-CALC099)
//
// Errors reported by the calculation engine in its response:
//
//	CALC001 - Engine error: The calculation engine rejected the request
//	          Action: Review the listed messages and correct the input
//	          Patterns: "calculation engine error"
//
//	CALC002 - Calculation failed: The calculation did not finish
//	          Action: Review the engine message; no results were applied
//	          Patterns: "calculation failed"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Empty file: The input file is empty
//	          Action: Choose a file with content
//	          Patterns: "empty file"
//
//	FILE002 - Invalid document: File is not valid XML or JSON
//	          Action: Check that the file is a complete export
//	          Patterns: "invalid xml", "invalid json"
//
//	FILE003 - Invalid spreadsheet: File could not be opened as xlsx
//	          Action: Save the file in Excel Workbook (.xlsx) format
//	          Patterns: "open spreadsheet"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches:
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Run again with LOG_LEVEL=debug and contact support
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.

package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters. Calculation and
// structure errors wrap field errors, so they come first. The duplicate
// sheet pattern precedes "sheet layout", which its message also contains.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Calculation Errors (CALC001-CALC002)
	// =========================================================================
	{
		pattern: "calculation engine error",
		msg: UserMessage{
			Message: "The calculation engine rejected the request",
			Action:  "Review the listed messages and correct the input",
			Code:    "CALC001",
		},
	},
	{
		pattern: "calculation failed",
		msg: UserMessage{
			Message: "The calculation did not finish",
			Action:  "Review the engine message; no results were applied",
			Code:    "CALC002",
		},
	},

	// =========================================================================
	// Structure Errors (STR001-STR003)
	// =========================================================================
	{
		pattern: "duplicate sheet name",
		msg: UserMessage{
			Message: "Two groups would be written to the same sheet",
			Action:  "Give every soil profile and load case a unique name",
			Code:    "STR003",
		},
	},
	{
		pattern: "sheet boundary",
		msg: UserMessage{
			Message: "Soil profile sheets could not be paired",
			Action:  `Every soil layer sheet needs a "<Profile>-Info" sheet after it`,
			Code:    "STR002",
		},
	},
	{
		pattern: "sheet layout",
		msg: UserMessage{
			Message: "Soil profile sheets could not be paired",
			Action:  `Every soil layer sheet needs a "<Profile>-Info" sheet after it`,
			Code:    "STR002",
		},
	},
	{
		pattern: "unexpected document shape",
		msg: UserMessage{
			Message: "The document layout is not recognized",
			Action:  "Make sure the file was exported by a supported version",
			Code:    "STR001",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE003)
	// =========================================================================
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The input file is empty",
			Action:  "Choose a file with content",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid xml",
		msg: UserMessage{
			Message: "File is not valid XML",
			Action:  "Check that the file is a complete export",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid json",
		msg: UserMessage{
			Message: "File is not valid JSON",
			Action:  "Check that the file is a complete export",
			Code:    "FILE002",
		},
	},
	{
		pattern: "open spreadsheet",
		msg: UserMessage{
			Message: "File could not be opened as a spreadsheet",
			Action:  "Save the file in Excel Workbook (.xlsx) format",
			Code:    "FILE003",
		},
	},

	// =========================================================================
	// Unit Errors (CNV001)
	// =========================================================================
	{
		pattern: "cannot scale",
		msg: UserMessage{
			Message: "A scaled field holds a non-numeric value",
			Action:  "Enter a number or leave the cell empty",
			Code:    "CNV001",
		},
	},

	// =========================================================================
	// Mapping Errors (MAP001-MAP003)
	// =========================================================================
	{
		pattern: "missing required field",
		msg: UserMessage{
			Message: "A required field has no value",
			Action:  "Fill in the field or remove the record",
			Code:    "MAP001",
		},
	},
	{
		pattern: "unknown enum value",
		msg: UserMessage{
			Message: "A code is not in the list of known values",
			Action:  "Check the pile type or concrete grade against the catalog",
			Code:    "MAP002",
		},
	},
	{
		pattern: "invalid format",
		msg: UserMessage{
			Message: "A value has the wrong format",
			Action:  "Check colors (8 hex digits) and numeric columns",
			Code:    "MAP003",
		},
	},
	{
		pattern: "invalid cells",
		msg: UserMessage{
			Message: "Spreadsheet cells have the wrong format",
			Action:  "Fix the listed cells and import again",
			Code:    "MAP003",
		},
	},
	{
		pattern: "cannot convert value",
		msg: UserMessage{
			Message: "A value has the wrong type",
			Action:  "Check colors (8 hex digits) and numeric columns",
			Code:    "MAP003",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with LOG_LEVEL=debug and contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := errors.New("soil_layer_input: field _cuk: missing required field")
//	msg := MapError(err)
//	// msg.Code == "MAP001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern.
// Returns false for nil and for the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
