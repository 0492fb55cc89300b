package core

import (
	"errors"
	"fmt"
)

// ValueType is the data type of a field on one side of a mapping.
type ValueType int

const (
	// TypeNone as a model type marks a field that is never stored: mapping
	// emits the fallback and unmapping drops the field.
	TypeNone ValueType = iota
	TypeString
	TypeBool
	TypeInt
	TypeFloat
	TypeBytes
	TypeDict
)

// String returns the lowercase type name.
func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBytes:
		return "bytes"
	case TypeDict:
		return "dict"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// MappingRule describes how one wire field relates to the model.
type MappingRule struct {
	Field     string        // Wire field name, e.g. "_Pname"
	Model     ValueType     // Type stored in the model; TypeNone for hardcoded wire values
	Wire      ValueType     // Type written to the wire; never TypeNone
	Fallback  any           // Emitted when the model value is missing; nil means required
	Transform TransformSpec // Applied between the model and wire coercions
}

// HasFallback reports whether the rule defines a value for missing fields.
func (r MappingRule) HasFallback() bool {
	return r.Fallback != nil
}

// TableInfo contains display information about a mapping table.
type TableInfo struct {
	Key   string // Unique identifier: "soil_layer_input"
	Group string // Direction: "input" or "output"
	Label string // Display name: "Soil layer (input)"
}

// MappingTable is an ordered, immutable list of rules for one wire record
// kind. Field order is the order the engine expects on the wire.
type MappingTable struct {
	Info  TableInfo
	rules []MappingRule
	index map[string]int
}

// Sentinel errors for table construction.
var (
	ErrNoWireType     = errors.New("rule has no wire type")
	ErrDuplicateField = errors.New("duplicate field")
	ErrEmptyField     = errors.New("rule has no field name")
)

// NewTable validates rules and builds a mapping table.
func NewTable(info TableInfo, rules ...MappingRule) (*MappingTable, error) {
	t := &MappingTable{
		Info:  info,
		rules: make([]MappingRule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if r.Field == "" {
			return nil, fmt.Errorf("table %s: %w", info.Key, ErrEmptyField)
		}
		if r.Wire == TypeNone {
			return nil, fmt.Errorf("table %s field %s: %w", info.Key, r.Field, ErrNoWireType)
		}
		if _, dup := t.index[r.Field]; dup {
			return nil, fmt.Errorf("table %s field %s: %w", info.Key, r.Field, ErrDuplicateField)
		}
		if r.Transform == nil {
			r.Transform = NoTransform{}
		}
		t.index[r.Field] = len(t.rules)
		t.rules = append(t.rules, r)
	}
	return t, nil
}

// MustTable is NewTable for package-level tables; it panics on invalid rules.
func MustTable(info TableInfo, rules ...MappingRule) *MappingTable {
	t, err := NewTable(info, rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Key returns the table's unique identifier.
func (t *MappingTable) Key() string { return t.Info.Key }

// Len returns the number of rules.
func (t *MappingTable) Len() int { return len(t.rules) }

// Rules returns a copy of the rules in wire order.
func (t *MappingTable) Rules() []MappingRule {
	out := make([]MappingRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Rule returns the rule for a wire field.
func (t *MappingTable) Rule(field string) (MappingRule, bool) {
	i, ok := t.index[field]
	if !ok {
		return MappingRule{}, false
	}
	return t.rules[i], true
}

// Fields returns the wire field names in order.
func (t *MappingTable) Fields() []string {
	out := make([]string, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Field
	}
	return out
}

// StoredFields returns the wire field names that are kept in the model.
func (t *MappingTable) StoredFields() []string {
	out := make([]string, 0, len(t.rules))
	for _, r := range t.rules {
		if r.Model != TypeNone {
			out = append(out, r.Field)
		}
	}
	return out
}
