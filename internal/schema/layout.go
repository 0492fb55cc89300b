// Package schema describes the column layouts of the project spreadsheet.
//
// Every sheet kind has a fixed column order and a marker column: rows with
// an empty marker cell are not data rows and are dropped on import.
package schema

import (
	"fmt"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/keys"
)

// Column is one spreadsheet column bound to a project field.
type Column struct {
	Header string         // Header cell text
	Key    string         // Project document key
	Type   core.ValueType // Cell value type
}

// Layout is the column layout of one sheet kind.
type Layout struct {
	Name    string
	Marker  string // Header of the column that identifies data rows
	Columns []Column

	dict *keys.Dictionary
}

func newLayout(name, marker string, cols ...Column) *Layout {
	pairs := make([]keys.Pair, len(cols))
	hasMarker := false
	for i, c := range cols {
		pairs[i] = keys.Pair{From: c.Key, To: c.Header}
		hasMarker = hasMarker || c.Header == marker
	}
	if !hasMarker {
		panic(fmt.Sprintf("schema %s: marker column %q not in layout", name, marker))
	}
	dict, err := keys.NewDictionary(name, pairs...)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return &Layout{Name: name, Marker: marker, Columns: cols, dict: dict}
}

// Headers returns the header row in column order.
func (l *Layout) Headers() []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Header
	}
	return out
}

// Keys returns the project keys in column order.
func (l *Layout) Keys() []string {
	out := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = c.Key
	}
	return out
}

// Column returns the column with the given header.
func (l *Layout) Column(header string) (Column, bool) {
	for _, c := range l.Columns {
		if c.Header == header {
			return c, true
		}
	}
	return Column{}, false
}

// Dictionary renames between project keys (ToModel) and headers (ToWire).
func (l *Layout) Dictionary() *keys.Dictionary {
	return l.dict
}

// Layouts lists every sheet layout.
func Layouts() []*Layout {
	return []*Layout{Piles, SoilLayers, SoilInfo, Loads}
}
