package core

import (
	"fmt"
	"sort"
)

// TransformSpec is the conversion applied between the model and wire
// coercions of a rule. The set of implementations is closed: NoTransform,
// LinearScale, EnumMap and Custom.
type TransformSpec interface {
	transformSpec()
	String() string
}

// NoTransform passes values through unchanged.
type NoTransform struct{}

// LinearScale multiplies by Factor towards the wire and divides by it back.
type LinearScale struct {
	Factor float64
}

// EnumPair is one model/wire correspondence of an EnumMap.
type EnumPair struct {
	Model any
	Wire  any
}

// EnumMap is a bijective lookup between model and wire values. The reverse
// direction is derived by inverting the forward pairs.
type EnumMap struct {
	pairs   []EnumPair
	forward map[any]any
	reverse map[any]any
}

// Custom delegates conversion to Fn, which receives forward=true when
// converting towards the wire.
type Custom struct {
	Name string
	Fn   func(v any, forward bool) (any, error)
}

func (NoTransform) transformSpec() {}
func (LinearScale) transformSpec() {}
func (EnumMap) transformSpec()     {}
func (Custom) transformSpec()      {}

func (NoTransform) String() string   { return "none" }
func (s LinearScale) String() string { return fmt.Sprintf("scale(%g)", s.Factor) }
func (e EnumMap) String() string     { return fmt.Sprintf("enum(%d)", len(e.pairs)) }
func (c Custom) String() string      { return "custom(" + c.Name + ")" }

// NewEnumMap builds an EnumMap and rejects mappings that are not one-to-one.
// Integer keys of any Go integer type are normalized to int64.
func NewEnumMap(pairs ...EnumPair) (EnumMap, error) {
	e := EnumMap{
		forward: make(map[any]any, len(pairs)),
		reverse: make(map[any]any, len(pairs)),
	}
	for _, p := range pairs {
		m, w := enumKey(p.Model), enumKey(p.Wire)
		if _, dup := e.forward[m]; dup {
			return EnumMap{}, fmt.Errorf("enum map is not bijective: model value %v listed twice", p.Model)
		}
		if _, dup := e.reverse[w]; dup {
			return EnumMap{}, fmt.Errorf("enum map is not bijective: wire value %v listed twice", p.Wire)
		}
		e.forward[m] = w
		e.reverse[w] = m
		e.pairs = append(e.pairs, EnumPair{Model: m, Wire: w})
	}
	return e, nil
}

// MustEnumMap is NewEnumMap for package-level values.
func MustEnumMap(pairs ...EnumPair) EnumMap {
	e, err := NewEnumMap(pairs...)
	if err != nil {
		panic(err)
	}
	return e
}

// Forward looks up the wire value for a model value.
func (e EnumMap) Forward(v any) (any, bool) {
	w, ok := e.forward[enumKey(v)]
	return w, ok
}

// Reverse looks up the model value for a wire value.
func (e EnumMap) Reverse(v any) (any, bool) {
	m, ok := e.reverse[enumKey(v)]
	return m, ok
}

// Pairs returns the forward pairs in declaration order.
func (e EnumMap) Pairs() []EnumPair {
	out := make([]EnumPair, len(e.pairs))
	copy(out, e.pairs)
	return out
}

// WireValues returns the wire side of the map, sorted for display.
func (e EnumMap) WireValues() []string {
	out := make([]string, 0, len(e.pairs))
	for _, p := range e.pairs {
		out = append(out, ToString(p.Wire))
	}
	sort.Strings(out)
	return out
}

func enumKey(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
	}
	return v
}

// ApplyTransform runs spec in the requested direction. LinearScale accepts
// numbers and numeric strings; the "NaN" sentinel and nil pass through.
func ApplyTransform(spec TransformSpec, v any, forward bool) (any, error) {
	switch s := spec.(type) {
	case nil, NoTransform:
		return v, nil

	case LinearScale:
		if v == nil || IsNaN(v) {
			return v, nil
		}
		f, err := ToFloat(v)
		if err != nil {
			return nil, fmt.Errorf("cannot scale non-numeric value %v", v)
		}
		if forward {
			return f * s.Factor, nil
		}
		return f / s.Factor, nil

	case EnumMap:
		var (
			out any
			ok  bool
		)
		if forward {
			out, ok = s.Forward(v)
		} else {
			out, ok = s.Reverse(v)
		}
		if !ok {
			return nil, fmt.Errorf("no mapping for %v", v)
		}
		return out, nil

	case Custom:
		if s.Fn == nil {
			return nil, fmt.Errorf("custom transform %s has no function", s.Name)
		}
		return s.Fn(v, forward)

	default:
		return nil, fmt.Errorf("unsupported transform %T", spec)
	}
}
