package document

// json.go encodes and decodes project JSON while keeping object key order.
//
// Decoding walks the go-json token stream instead of unmarshalling into
// map[string]any, which would lose the field order. Numbers are read as
// json.Number and stored as int64 when they are integral literals and as
// float64 otherwise.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrTrailingData is returned when a JSON document has content after the
// first complete value.
var ErrTrailingData = errors.New("invalid json: trailing data after document")

// DecodeJSON reads a single JSON value from r.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	v, err := readValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

// UnmarshalJSON decodes b into a document node.
func UnmarshalJSON(b []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(b))
}

// DecodeJSONMap reads a JSON object from r.
func DecodeJSONMap(r io.Reader) (*Map, error) {
	v, err := DecodeJSON(r)
	if err != nil {
		return nil, err
	}
	m, ok := AsMap(v)
	if !ok {
		return nil, fmt.Errorf("invalid json: expected object at top level, got %s", KindOf(v))
	}
	return m, nil
}

func readValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("invalid json: unexpected delimiter %q", rune(t))
		}
	case json.Number:
		return parseNumber(string(t))
	case float64:
		return t, nil
	case string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("invalid json: unexpected token %T", tok)
	}
}

func readObject(dec *json.Decoder) (*Map, error) {
	m := NewMap()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid json: object key must be a string, got %T", tok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid json: value for %q: %w", key, err)
		}
		v, err := readValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
}

func readArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return out, nil
		}
		v, err := readValue(dec, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func parseNumber(s string) (any, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid json: number %q: %w", s, err)
	}
	return f, nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeJSON writes v to w, indented with two spaces when indent is set.
func EncodeJSON(w io.Writer, v any, indent bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if indent {
		var out bytes.Buffer
		if err := json.Indent(&out, b, "", "  "); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		b = out.Bytes()
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// KindOf names the node type of v for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64, int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case *Map:
		return "object"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
