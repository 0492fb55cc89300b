// Package document provides the ordered tree used for every in-memory
// representation of project data: the project JSON, the wire request and
// response documents, and the rows read from spreadsheets.
//
// A node is one of nil, bool, int64, float64, string, []byte, *Map or []any.
// Map preserves insertion order so that encoders reproduce the field order
// the calculation engine expects.
package document

// Map is an insertion-ordered string-keyed map.
// The zero value is not usable; create one with NewMap.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapOf builds a map from alternating key/value arguments.
// Panics if a key is not a string or the argument count is odd.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("document: MapOf needs key/value pairs")
	}
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil.
func (m *Map) Value(key string) any {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present (even with a nil value).
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. An existing key keeps its position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Rename moves the value of oldKey to newKey in place, keeping the position
// of oldKey. An existing newKey elsewhere in the map is replaced.
func (m *Map) Rename(oldKey, newKey string) {
	if oldKey == newKey || !m.Has(oldKey) {
		return
	}
	v := m.values[oldKey]
	m.Delete(newKey)
	for i, k := range m.keys {
		if k == oldKey {
			m.keys[i] = newKey
			break
		}
	}
	delete(m.values, oldKey)
	m.values[newKey] = v
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for every entry in order until fn returns false.
func (m *Map) Range(fn func(key string, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = Clone(v)
	}
	return out
}

// Clone deep-copies any document node.
func Clone(v any) any {
	switch n := v.(type) {
	case *Map:
		return n.Clone()
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = Clone(item)
		}
		return out
	case []byte:
		out := make([]byte, len(n))
		copy(out, n)
		return out
	default:
		return v
	}
}

// AsMap returns v as a map when it is one.
func AsMap(v any) (*Map, bool) {
	m, ok := v.(*Map)
	return m, ok && m != nil
}

// AsList normalizes a node into a sequence: nil becomes an empty sequence,
// a sequence is returned as is and any other node becomes a one-element
// sequence. The wire format collapses single-element lists into bare
// objects, so every list-valued wire field goes through here.
func AsList(v any) []any {
	switch n := v.(type) {
	case nil:
		return nil
	case []any:
		return n
	default:
		return []any{v}
	}
}

// Maps returns the map elements of a list node, skipping anything else.
func Maps(v any) []*Map {
	items := AsList(v)
	out := make([]*Map, 0, len(items))
	for _, item := range items {
		if m, ok := AsMap(item); ok {
			out = append(out, m)
		}
	}
	return out
}

// Lookup walks nested maps along path.
func Lookup(v any, path ...string) (any, bool) {
	cur := v
	for _, key := range path {
		m, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m.Get(key)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
