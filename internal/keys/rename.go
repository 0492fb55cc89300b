package keys

import "github.com/JonMunkholm/pilexchange/internal/document"

// Rename returns a copy of node with every map key replaced through d,
// descending into nested maps and lists. Keys the dictionary does not know
// are kept. When two keys of one map rename to the same key, the later one
// wins.
func Rename(node any, d *Dictionary, dir Direction) any {
	switch n := node.(type) {
	case *document.Map:
		return RenameMap(n, d, dir)
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = Rename(item, d, dir)
		}
		return out
	default:
		return node
	}
}

// RenameMap is Rename for a map node.
func RenameMap(m *document.Map, d *Dictionary, dir Direction) *document.Map {
	if m == nil {
		return nil
	}
	out := document.NewMap()
	m.Range(func(k string, v any) bool {
		if to, ok := d.Lookup(k, dir); ok {
			k = to
		}
		out.Set(k, Rename(v, d, dir))
		return true
	})
	return out
}

// Filter returns a copy of node keeping only the listed keys, recursively.
// List items are filtered one by one.
func Filter(node any, keep []string) any {
	set := make(map[string]bool, len(keep))
	for _, k := range keep {
		set[k] = true
	}
	return filter(node, set)
}

func filter(node any, keep map[string]bool) any {
	switch n := node.(type) {
	case *document.Map:
		out := document.NewMap()
		n.Range(func(k string, v any) bool {
			if keep[k] {
				out.Set(k, filter(v, keep))
			}
			return true
		})
		return out
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = filter(item, keep)
		}
		return out
	default:
		return node
	}
}

// Sort returns a copy of m with the keys in order first. Ordered keys
// missing from m are added with a nil value. Remaining keys follow in
// their original order when includeUnlisted is set and are dropped
// otherwise.
func Sort(m *document.Map, order []string, includeUnlisted bool) *document.Map {
	out := document.NewMap()
	listed := make(map[string]bool, len(order))
	for _, k := range order {
		listed[k] = true
		out.Set(k, m.Value(k))
	}
	if includeUnlisted {
		m.Range(func(k string, v any) bool {
			if !listed[k] {
				out.Set(k, v)
			}
			return true
		})
	}
	return out
}
