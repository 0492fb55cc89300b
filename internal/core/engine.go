package core

import (
	"errors"

	"github.com/JonMunkholm/pilexchange/internal/document"
)

// Map converts a record keyed by wire field names into a wire record with
// exactly the table's fields, in table order.
//
// For each rule: a TypeNone model emits the fallback without reading the
// record; a missing or nil value emits the fallback, or fails when the rule
// has none; otherwise the transform runs forward and the result is coerced
// to the wire type.
func Map(record *document.Map, table *MappingTable) (*document.Map, error) {
	out := document.NewMap()
	for _, r := range table.rules {
		v, err := mapField(record, r)
		if err != nil {
			return nil, fieldErr(table, r, err)
		}
		out.Set(r.Field, v)
	}
	return out, nil
}

// Unmap converts a wire record back to model values, still keyed by wire
// field names. Fields with a TypeNone model are dropped. Missing or nil
// wire values become nil.
func Unmap(wire *document.Map, table *MappingTable) (*document.Map, error) {
	out := document.NewMap()
	for _, r := range table.rules {
		if r.Model == TypeNone {
			continue
		}
		v, err := unmapField(wire, r)
		if err != nil {
			return nil, fieldErr(table, r, err)
		}
		out.Set(r.Field, v)
	}
	return out, nil
}

// MapBestEffort is Map for bulk copies: a failing field keeps the record's
// value (nil when absent) and is listed in the report instead of aborting.
func MapBestEffort(record *document.Map, table *MappingTable) (*document.Map, CopyReport) {
	report := CopyReport{Table: table.Info.Key}
	out := document.NewMap()
	for _, r := range table.rules {
		v, err := mapField(record, r)
		if err != nil {
			prior := record.Value(r.Field)
			report.Skipped = append(report.Skipped, FieldError{Field: r.Field, Value: prior, Err: fieldErr(table, r, err)})
			v = prior
		}
		out.Set(r.Field, v)
	}
	return out, report
}

// UnmapBestEffort is Unmap for bulk copies, see MapBestEffort.
func UnmapBestEffort(wire *document.Map, table *MappingTable) (*document.Map, CopyReport) {
	report := CopyReport{Table: table.Info.Key}
	out := document.NewMap()
	for _, r := range table.rules {
		if r.Model == TypeNone {
			continue
		}
		v, err := unmapField(wire, r)
		if err != nil {
			prior := wire.Value(r.Field)
			report.Skipped = append(report.Skipped, FieldError{Field: r.Field, Value: prior, Err: fieldErr(table, r, err)})
			v = prior
		}
		out.Set(r.Field, v)
	}
	return out, report
}

func mapField(record *document.Map, r MappingRule) (any, error) {
	if r.Model == TypeNone {
		return Coerce(r.Fallback, r.Wire)
	}

	v := record.Value(r.Field)
	if v == nil {
		if !r.HasFallback() {
			return nil, &MappingError{Reason: ReasonMissing}
		}
		return Coerce(r.Fallback, r.Wire)
	}

	t, err := ApplyTransform(r.Transform, v, true)
	if err != nil {
		return nil, transformErr(r, v, err)
	}
	w, err := Coerce(t, r.Wire)
	if err != nil {
		return nil, &MappingError{Value: t, Reason: ReasonConvert, Err: err}
	}
	return w, nil
}

func unmapField(wire *document.Map, r MappingRule) (any, error) {
	v := wire.Value(r.Field)
	if v == nil {
		return nil, nil
	}

	// Custom transforms see the raw wire value.
	if _, custom := r.Transform.(Custom); !custom {
		w, err := Coerce(v, r.Wire)
		if err != nil {
			return nil, &MappingError{Value: v, Reason: ReasonConvert, Err: err}
		}
		v = w
	}

	t, err := ApplyTransform(r.Transform, v, false)
	if err != nil {
		return nil, transformErr(r, v, err)
	}
	m, err := Coerce(t, r.Model)
	if err != nil {
		return nil, &MappingError{Value: t, Reason: ReasonConvert, Err: err}
	}
	return m, nil
}

func transformErr(r MappingRule, v any, err error) error {
	var me *MappingError
	if errors.As(err, &me) {
		return me
	}
	reason := ReasonConvert
	if _, ok := r.Transform.(EnumMap); ok {
		reason = ReasonEnum
	}
	return &MappingError{Value: v, Reason: reason, Err: err}
}

// fieldErr fills in the table and field of a MappingError raised below.
func fieldErr(table *MappingTable, r MappingRule, err error) error {
	var me *MappingError
	if !errors.As(err, &me) {
		me = &MappingError{Reason: ReasonConvert, Err: err}
	}
	out := *me
	if out.Table == "" {
		out.Table = table.Info.Key
	}
	if out.Field == "" {
		out.Field = r.Field
	}
	return &out
}
