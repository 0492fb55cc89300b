package reshape

import (
	"sort"

	"github.com/JonMunkholm/pilexchange/internal/core"
	"github.com/JonMunkholm/pilexchange/internal/document"
)

// Keys of the tabular project document.
const (
	KeyName         = "name"
	KeySettings     = "settings"
	KeyPiles        = "piles"
	KeySoilProfiles = "soil_profiles"
	KeySoilLayers   = "soil_layers"
	KeyLoadCases    = "horizontal_loadcases"
	KeyLoads        = "horizontal_loads"
	KeyRowIndex     = "row_index"
)

// Normalize checks the shape of a project document and returns a copy
// with every list sorted by row_index. Items without row_index keep their
// relative order after the indexed ones.
//
// Expected shape:
//
//	{settings{}, piles[], soil_profiles[{soil_layers[]}], horizontal_loadcases[{horizontal_loads[]}]}
//
// Missing groups become empty. The input is not modified.
func Normalize(project *document.Map) (*document.Map, error) {
	if project == nil {
		return nil, Structural("", "project document is empty")
	}
	out := project.Clone()

	switch s := out.Value(KeySettings).(type) {
	case nil:
		out.Set(KeySettings, document.NewMap())
	case *document.Map:
	default:
		return nil, Structural(KeySettings, "expected an object, got %s", document.KindOf(s))
	}

	piles, err := rows(out, KeyPiles, KeyPiles)
	if err != nil {
		return nil, err
	}
	out.Set(KeyPiles, piles)

	profiles, err := rows(out, KeySoilProfiles, KeySoilProfiles)
	if err != nil {
		return nil, err
	}
	for i, p := range profiles {
		layers, err := rows(p.(*document.Map), KeySoilLayers, itemPath(KeySoilProfiles, i)+"."+KeySoilLayers)
		if err != nil {
			return nil, err
		}
		p.(*document.Map).Set(KeySoilLayers, layers)
	}
	out.Set(KeySoilProfiles, profiles)

	cases, err := rows(out, KeyLoadCases, KeyLoadCases)
	if err != nil {
		return nil, err
	}
	for i, c := range cases {
		loads, err := rows(c.(*document.Map), KeyLoads, itemPath(KeyLoadCases, i)+"."+KeyLoads)
		if err != nil {
			return nil, err
		}
		c.(*document.Map).Set(KeyLoads, loads)
	}
	out.Set(KeyLoadCases, cases)

	return out, nil
}

// rows returns m[key] as a list of maps sorted by row_index.
func rows(m *document.Map, key, path string) ([]any, error) {
	var items []any
	switch v := m.Value(key).(type) {
	case nil:
		items = []any{}
	case []any:
		items = v
	default:
		return nil, Structural(path, "expected a list, got %s", document.KindOf(v))
	}

	type indexed struct {
		item  any
		index int64
		has   bool
	}
	sorted := make([]indexed, len(items))
	for i, item := range items {
		row, ok := document.AsMap(item)
		if !ok {
			return nil, Structural(itemPath(path, i), "expected an object, got %s", document.KindOf(item))
		}
		sorted[i].item = row
		if raw := row.Value(KeyRowIndex); raw != nil {
			idx, err := core.ToInt(raw)
			if err != nil {
				return nil, Structural(itemPath(path, i)+"."+KeyRowIndex, "expected an integer, got %v", raw)
			}
			sorted[i].index, sorted[i].has = idx, true
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.has != b.has {
			return a.has
		}
		return a.has && a.index < b.index
	})

	out := make([]any, len(sorted))
	for i, s := range sorted {
		out[i] = s.item
	}
	return out, nil
}

// Reindex sets row_index to 0..n-1 in list order.
func Reindex(items []any) {
	for i, item := range items {
		if row, ok := document.AsMap(item); ok {
			row.Set(KeyRowIndex, int64(i))
		}
	}
}

// Rows returns the map items of a project list, e.g. Rows(project, KeyPiles).
func Rows(m *document.Map, key string) []*document.Map {
	return document.Maps(m.Value(key))
}
