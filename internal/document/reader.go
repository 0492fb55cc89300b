package document

import (
	"bytes"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadClean reads r fully through NewCleanReader: a leading UTF-8 BOM
// (written by most Windows tools) is dropped and invalid UTF-8 bytes become
// '?', so the decoders never fail on stray encoding errors.
func ReadClean(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(NewCleanReader(r))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

// Sniff reports whether the input looks like XML (first non-space byte is
// '<') rather than JSON.
func Sniff(b []byte) (isXML bool) {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(b, utf8BOM), " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

// Decode reads either an XML or a JSON document, detected from content.
// XML input yields the root element map; JSON input must be an object.
func Decode(r io.Reader) (*Map, error) {
	b, err := ReadClean(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if Sniff(b) {
		return DecodeXML(bytes.NewReader(b))
	}
	return DecodeJSONMap(bytes.NewReader(b))
}
