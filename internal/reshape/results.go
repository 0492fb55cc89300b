package reshape

import (
	"strings"

	"github.com/JonMunkholm/pilexchange/internal/document"
)

// Result groups of an OutputDaten document. The engine collapses each of
// them into a bare object when it holds a single entry.
var (
	PileResultsPath = []string{"pfaehle", "LastPunktOutputList", "LastPunktOutput"}
	SoilUsagePath   = []string{"BodenNutzung", "BodenNutzungDict", "a:KeyValueOfstringBodenNutzungOutputDB_PsWP3v"}
	LoadResultsPath = []string{"hLasten", "LastPunktOutputDict", "a:KeyValueOfstringArrayOfHLastPunktHorOutputDB_PsWP3v"}
)

// Keys inside the result groups.
const (
	KeyEntryKey      = "a:Key"
	KeyEntryValue    = "a:Value"
	KeyUsedLayers    = "_schichten"
	KeyUsedLayer     = "BodenSchichtNutzung"
	KeyLoadResult    = "HLastPunktHorOutput"
	KeyErrorText     = "_fehlerText"
	KeyErrorList     = "_errorList"
	KeyErrorListItem = "InfoInhalt"
)

// ResultGroupKeys lists the top-level OutputDaten groups that hold results.
// They are dropped when the engine reports an error text.
var ResultGroupKeys = []string{"pfaehle", "hLasten", "gruppenStatiken", "Kosten", "BodenNutzung", "KostenOutput"}

// NormalizeResults re-wraps bare result objects into one-element lists in
// place: the three result groups, the used soil layers of every soil usage
// entry and the results of every load case entry. Groups that already hold
// a list are left as they are; missing groups are skipped. The argument is
// the OutputDaten map.
func NormalizeResults(out *document.Map) error {
	if out == nil {
		return Structural(RootOutput, "document is empty")
	}

	if _, err := wrapAt(out, PileResultsPath); err != nil {
		return err
	}

	usage, err := wrapAt(out, SoilUsagePath)
	if err != nil {
		return err
	}
	for i, entry := range usage {
		if err := wrapEntry(entry, itemPath(pathString(SoilUsagePath), i), KeyUsedLayers, KeyUsedLayer); err != nil {
			return err
		}
	}

	loads, err := wrapAt(out, LoadResultsPath)
	if err != nil {
		return err
	}
	for i, entry := range loads {
		if err := wrapEntry(entry, itemPath(pathString(LoadResultsPath), i), KeyLoadResult); err != nil {
			return err
		}
	}
	return nil
}

// ResultGroup returns the entries of a normalized result group.
func ResultGroup(out *document.Map, path []string) []*document.Map {
	v, ok := document.Lookup(out, path...)
	if !ok {
		return nil
	}
	return document.Maps(v)
}

// EntryValue returns the a:Value map of a KeyValueOf entry.
func EntryValue(entry *document.Map) *document.Map {
	m, _ := document.AsMap(entry.Value(KeyEntryValue))
	return m
}

// wrapAt normalizes the node at path into a list and returns its maps.
func wrapAt(m *document.Map, path []string) ([]*document.Map, error) {
	parent := m
	for i, key := range path[:len(path)-1] {
		v := parent.Value(key)
		if v == nil {
			return nil, nil
		}
		next, ok := document.AsMap(v)
		if !ok {
			return nil, Structural(pathString(path[:i+1]), "expected an object, got %s", document.KindOf(v))
		}
		parent = next
	}

	last := path[len(path)-1]
	if !parent.Has(last) {
		return nil, nil
	}
	items := listOf(parent.Value(last))
	out := make([]*document.Map, 0, len(items))
	for i, item := range items {
		row, ok := document.AsMap(item)
		if !ok {
			return nil, Structural(itemPath(pathString(path), i), "expected an object, got %s", document.KindOf(item))
		}
		out = append(out, row)
	}
	parent.Set(last, items)
	return out, nil
}

// wrapEntry normalizes the list below the a:Value of a KeyValueOf entry.
func wrapEntry(entry *document.Map, at string, path ...string) error {
	v := entry.Value(KeyEntryValue)
	if v == nil {
		return nil
	}
	value, ok := document.AsMap(v)
	if !ok {
		return Structural(at+"."+KeyEntryValue, "expected an object, got %s", document.KindOf(v))
	}
	_, err := wrapAt(value, path)
	return err
}

func pathString(path []string) string {
	return strings.Join(path, ".")
}
