// Package ordered provides a string-keyed map that remembers the
// order its keys were inserted in.
package ordered

import "sort"

// A Map holds string-keyed values and records the order keys were
// first added. Replacing the value for an existing key keeps the
// key's original position.
type Map struct {
	keys   []string
	values map[string]interface{}
}

// NewMap returns an empty Map, ready for use.
func NewMap() *Map {
	return &Map{values: make(map[string]interface{})}
}

// Put adds or replaces the value stored under key.
func (m *Map) Put(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, and whether it was present.
func (m *Map) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present in the map.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the map's keys in insertion order. The returned slice
// is a copy and may be modified by the caller.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range calls fn on each key/value pair in insertion order.
func (m *Map) Range(fn func(key string, value interface{})) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// SortedKeys returns the keys of a plain map in lexical order, for
// deterministic traversal when no insertion order is available.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
