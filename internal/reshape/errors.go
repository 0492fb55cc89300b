// Package reshape converts between the tabular project shape (lists of
// piles, soil profiles, load cases) and the nested DHPD wire shape, where
// every list sits in a named container and single-element lists may be
// collapsed into bare objects.
package reshape

import "fmt"

// StructuralError reports a document that does not have the expected shape.
// Structural errors abort the whole conversion.
type StructuralError struct {
	Path string // Dotted location, e.g. "soil_profiles[1].soil_layers"
	Msg  string
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return "unexpected document shape: " + e.Msg
	}
	return fmt.Sprintf("unexpected document shape at %s: %s", e.Path, e.Msg)
}

// Structural builds a StructuralError.
func Structural(path, format string, args ...any) *StructuralError {
	return &StructuralError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func itemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
