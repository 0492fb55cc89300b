// Package units applies the fixed scale factors between project units and
// the units the calculation engine works in.
//
// A factor multiplies towards the engine (Forward) and divides on the way
// back (Reverse). Fields are addressed by dotted paths into a document; a
// segment ending in "[]" walks every item of a list:
//
//	soil_profiles[].soil_layers[].qsk
//
// Missing fields and nil values are skipped, the "NaN" sentinel passes
// through unscaled.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
)

// Direction selects multiplication or division by the factor.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// Field is one scaled field.
type Field struct {
	Path   string
	Factor float64
}

// Name returns the last path segment.
func (f Field) Name() string {
	return f.Path[strings.LastIndex(f.Path, ".")+1:]
}

// ConversionError reports a scaled field that does not hold a number.
type ConversionError struct {
	Path  string
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot scale %s: non-numeric value %q", e.Path, core.ToString(e.Value))
}

// Table is an immutable list of scaled fields.
type Table struct {
	fields []Field
}

// NewTable validates fields and builds a table.
func NewTable(fields ...Field) (*Table, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Path == "" || strings.Contains(f.Path, "..") {
			return nil, fmt.Errorf("units: invalid path %q", f.Path)
		}
		if f.Factor == 0 || math.IsNaN(f.Factor) || math.IsInf(f.Factor, 0) {
			return nil, fmt.Errorf("units: invalid factor %v for %s", f.Factor, f.Path)
		}
		if seen[f.Path] {
			return nil, fmt.Errorf("units: duplicate path %s", f.Path)
		}
		seen[f.Path] = true
	}
	return &Table{fields: append([]Field(nil), fields...)}, nil
}

// MustTable is NewTable for package-level tables.
func MustTable(fields ...Field) *Table {
	t, err := NewTable(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Fields returns a copy of the table's fields.
func (t *Table) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// Option changes how Convert treats values.
type Option func(*options)

type options struct {
	round bool
}

// WithRounding rounds every converted value to two decimals. Imports use it
// so that values read back from the engine units look like user input.
func WithRounding() Option {
	return func(o *options) { o.round = true }
}

// Convert scales every field of doc in place. It stops at the first
// ConversionError; fields converted before it keep their new value.
func (t *Table) Convert(doc *document.Map, dir Direction, opts ...Option) error {
	errs := t.convert(doc, dir, true, opts)
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ConvertBestEffort scales every field it can and returns the errors of
// the fields it left untouched.
func (t *Table) ConvertBestEffort(doc *document.Map, dir Direction, opts ...Option) []*ConversionError {
	return t.convert(doc, dir, false, opts)
}

func (t *Table) convert(doc *document.Map, dir Direction, stop bool, opts []Option) []*ConversionError {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var errs []*ConversionError
	for _, f := range t.fields {
		walk(doc, strings.Split(f.Path, "."), "", func(m *document.Map, key, at string) bool {
			v := m.Value(key)
			out, err := scale(v, f.Factor, dir)
			if err != nil {
				errs = append(errs, &ConversionError{Path: at, Value: v})
				return !stop
			}
			if o.round {
				out, _ = core.RoundValue(out)
			}
			m.Set(key, out)
			return true
		})
		if stop && len(errs) > 0 {
			break
		}
	}
	return errs
}

// walk calls fn for every map holding the final path segment. fn returns
// false to stop the walk.
func walk(m *document.Map, segs []string, at string, fn func(m *document.Map, key, at string) bool) bool {
	seg := segs[0]
	list := strings.HasSuffix(seg, "[]")
	key := strings.TrimSuffix(seg, "[]")
	if at != "" {
		at += "."
	}
	at += key

	if len(segs) == 1 {
		if !m.Has(key) {
			return true
		}
		return fn(m, key, at)
	}

	if !list {
		next, ok := document.AsMap(m.Value(key))
		if !ok {
			return true
		}
		return walk(next, segs[1:], at, fn)
	}

	for i, item := range document.AsList(m.Value(key)) {
		next, ok := document.AsMap(item)
		if !ok {
			continue
		}
		if !walk(next, segs[1:], fmt.Sprintf("%s[%d]", at, i), fn) {
			return false
		}
	}
	return true
}

func scale(v any, factor float64, dir Direction) (any, error) {
	if v == nil || core.IsNaN(v) {
		return v, nil
	}
	if !core.IsNumeric(v) {
		return nil, errors.New("not a number")
	}
	f, err := core.ToFloat(v)
	if err != nil {
		return nil, err
	}
	if dir == Reverse {
		return f / factor, nil
	}
	return f * factor, nil
}
