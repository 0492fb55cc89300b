package reshape

import "github.com/JonMunkholm/pilexchange/internal/document"

// Flatten turns an imported request document (as written by Nest) back into
// the tabular shape, still keyed by wire names:
//
//	{settings, piles[], soil_profiles[{..., alleBodenSchichten[]}], horizontal_loadcases[{..., hLastPunkte[]}]}
//
// Containers are unwrapped, bare objects become one-element lists and every
// row gets row_index 0..n-1 within its parent in document order. Missing
// groups become empty lists. The input may be the root map or the map
// holding it under InputDaten.
func Flatten(doc *document.Map) (*document.Map, error) {
	input := doc
	if v, ok := doc.Get(RootInput); ok {
		m, ok := document.AsMap(v)
		if !ok {
			return nil, Structural(RootInput, "expected an object, got %s", document.KindOf(v))
		}
		input = m
	}
	if input == nil {
		return nil, Structural("", "document is empty")
	}

	out := document.NewMap()

	switch info := input.Value(KeyProjectInfo).(type) {
	case nil:
		out.Set(KeySettings, document.NewMap())
	case *document.Map:
		out.Set(KeySettings, info.Clone())
	default:
		return nil, Structural(RootInput+"."+KeyProjectInfo, "expected an object, got %s", document.KindOf(info))
	}

	piles, err := unwrap(input, RootInput, KeyPileData, KeyPileList, KeyPile)
	if err != nil {
		return nil, err
	}
	out.Set(KeyPiles, piles)

	profiles, err := unwrap(input, RootInput, KeySoil, KeyAllProfiles, KeyProfile)
	if err != nil {
		return nil, err
	}
	for i, p := range profiles {
		layers, err := unwrap(p.(*document.Map), itemPath(KeyProfile, i), KeyAllLayers, KeyLayer)
		if err != nil {
			return nil, err
		}
		p.(*document.Map).Set(KeyAllLayers, layers)
	}
	out.Set(KeySoilProfiles, profiles)

	cases, err := unwrap(input, RootInput, KeyHLoads, KeyLoadTables, KeyLoadTable)
	if err != nil {
		return nil, err
	}
	for i, c := range cases {
		points, err := unwrap(c.(*document.Map), itemPath(KeyLoadTable, i), KeyLoadPoints, KeyLoadPoint)
		if err != nil {
			return nil, err
		}
		c.(*document.Map).Set(KeyLoadPoints, points)
	}
	out.Set(KeyLoadCases, cases)

	return out, nil
}

// unwrap follows path below m, normalizes the final node into a list of
// copied maps and assigns row_index. A missing or empty container yields
// an empty list.
func unwrap(m *document.Map, at string, path ...string) ([]any, error) {
	cur := any(m)
	for _, key := range path[:len(path)-1] {
		at += "." + key
		switch c := cur.(type) {
		case *document.Map:
			cur = c.Value(key)
		default:
			return nil, Structural(at, "expected an object, got %s", document.KindOf(c))
		}
		if cur == nil {
			return []any{}, nil
		}
	}

	last := path[len(path)-1]
	container, ok := document.AsMap(cur)
	if !ok {
		return nil, Structural(at, "expected an object, got %s", document.KindOf(cur))
	}
	at += "." + last

	items := document.AsList(container.Value(last))
	out := make([]any, 0, len(items))
	for i, item := range items {
		row, ok := document.AsMap(item)
		if !ok {
			return nil, Structural(itemPath(at, i), "expected an object, got %s", document.KindOf(item))
		}
		out = append(out, row.Clone())
	}
	Reindex(out)
	return out, nil
}
