package core

import (
	"fmt"
	"sort"
)

// Tables register themselves from package init functions and are read-only
// afterwards, so lookups need no locking.
var registry = make(map[string]*MappingTable)

// Register adds a mapping table to the registry.
// Panics if a table with the same key is already registered.
func Register(t *MappingTable) {
	if _, exists := registry[t.Info.Key]; exists {
		panic(fmt.Sprintf("table already registered: %s", t.Info.Key))
	}
	registry[t.Info.Key] = t
}

// Get returns a mapping table by key.
// Returns false if not found.
func Get(key string) (*MappingTable, bool) {
	t, ok := registry[key]
	return t, ok
}

// All returns all registered tables.
// Sorted by group then by key for consistent ordering.
func All() []*MappingTable {
	result := make([]*MappingTable, 0, len(registry))
	for _, t := range registry {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Group != result[j].Info.Group {
			return result[i].Info.Group < result[j].Info.Group
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// ByGroup returns all tables for a specific group.
// Sorted by key for consistent ordering.
func ByGroup(group string) []*MappingTable {
	var result []*MappingTable
	for _, t := range registry {
		if t.Info.Group == group {
			result = append(result, t)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// Groups returns all unique group names.
// Sorted alphabetically.
func Groups() []string {
	seen := make(map[string]bool)
	for _, t := range registry {
		seen[t.Info.Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// TableCount returns the number of registered tables.
func TableCount() int {
	return len(registry)
}
