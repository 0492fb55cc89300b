package document

// xml.go converts between XML and document trees using the conventions the
// calculation engine's proxy uses on its side:
//
//   - attributes become keys prefixed with "@" (namespace prefixes are kept,
//     so xmlns:i stays "@xmlns:i")
//   - element names keep their prefix ("a:Key")
//   - repeated sibling elements become a list; a single element stays a bare
//     object
//   - an element without attributes or children becomes its trimmed text, or
//     nil when empty
//   - text next to attributes or children is stored under "#text"
//
// All decoded scalars are strings. Typing happens in the mapping layer.

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// AttrPrefix marks attribute keys.
	AttrPrefix = "@"
	// TextKey holds element text when the element also has attributes or children.
	TextKey = "#text"
)

type xmlFrame struct {
	name string
	node *Map
	text strings.Builder
}

// DecodeXML reads an XML document and returns a map holding the root
// element under its name.
func DecodeXML(r io.Reader) (*Map, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	root := NewMap()
	var stack []*xmlFrame

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root.Len() > 0 {
				return nil, errors.New("invalid xml: multiple root elements")
			}
			f := &xmlFrame{name: qualifiedName(t.Name), node: NewMap()}
			for _, a := range t.Attr {
				f.node.Set(AttrPrefix+qualifiedName(a.Name), a.Value)
			}
			stack = append(stack, f)

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("invalid xml: unexpected end element %s", qualifiedName(t.Name))
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if name := qualifiedName(t.Name); name != f.name {
				return nil, fmt.Errorf("invalid xml: element %s closed by %s", f.name, name)
			}
			v := f.value()
			if len(stack) == 0 {
				root.Set(f.name, v)
				continue
			}
			addChild(stack[len(stack)-1].node, f.name, v)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("invalid xml: element %s is not closed", stack[len(stack)-1].name)
	}
	if root.Len() == 0 {
		return nil, errors.New("invalid xml: empty document")
	}
	return root, nil
}

func (f *xmlFrame) value() any {
	text := strings.TrimSpace(f.text.String())
	if f.node.Len() == 0 {
		if text == "" {
			return nil
		}
		return text
	}
	if text != "" {
		f.node.Set(TextKey, text)
	}
	return f.node
}

func addChild(parent *Map, name string, v any) {
	existing, ok := parent.Get(name)
	if !ok {
		parent.Set(name, v)
		return
	}
	if list, isList := existing.([]any); isList {
		parent.Set(name, append(list, v))
		return
	}
	parent.Set(name, []any{existing, v})
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// EncodeXML writes doc, which must hold exactly one root element, as an XML
// document with declaration. Indentation uses tabs when pretty is set.
func EncodeXML(w io.Writer, doc *Map, pretty bool) error {
	if doc.Len() != 1 {
		return fmt.Errorf("encode xml: document must have exactly one root, got %d", doc.Len())
	}

	enc := xml.NewEncoder(w)
	if pretty {
		enc.Indent("", "\t")
	}
	if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="utf-8"`)}); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	if pretty {
		if err := enc.EncodeToken(xml.CharData("\n")); err != nil {
			return fmt.Errorf("encode xml: %w", err)
		}
	}

	name := doc.Keys()[0]
	if err := encodeElement(enc, name, doc.Value(name)); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	return enc.Flush()
}

// MarshalXML renders doc with EncodeXML into a byte slice.
func MarshalXML(doc *Map, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeXML(&buf, doc, pretty); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, name string, v any) error {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if err := encodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	m, isMap := AsMap(v)
	if isMap {
		m.Range(func(k string, av any) bool {
			if strings.HasPrefix(k, AttrPrefix) {
				start.Attr = append(start.Attr, xml.Attr{
					Name:  xml.Name{Local: strings.TrimPrefix(k, AttrPrefix)},
					Value: scalarText(av),
				})
			}
			return true
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if isMap {
		var err error
		m.Range(func(k string, cv any) bool {
			switch {
			case strings.HasPrefix(k, AttrPrefix):
			case k == TextKey:
				err = enc.EncodeToken(xml.CharData(scalarText(cv)))
			default:
				err = encodeElement(enc, k, cv)
			}
			return err == nil
		})
		if err != nil {
			return err
		}
	} else if v != nil {
		if err := enc.EncodeToken(xml.CharData(scalarText(v))); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func scalarText(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		if n {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return FormatFloat(n)
	case []byte:
		return base64.StdEncoding.EncodeToString(n)
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat renders f in its shortest decimal form, always keeping a
// fractional part so the engine reads it as a floating point value.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
