package values

import (
	"iter"
	"slices"
	"sort"
	"strconv"
)

// Map is a string-keyed map that remembers insertion order.
// Nested structure is expressed by storing *Map values.
//
// The zero value is not usable; create one with NewMap or FromGoMap.
// Read methods are safe to call on a nil *Map.
type Map struct {
	keys    []string
	entries map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string]any)}
}

// FromGoMap converts a Go map into a Map. Nested map[string]any values are
// converted recursively. Go maps carry no order, so keys are sorted to keep
// the result deterministic.
func FromGoMap(m map[string]any) *Map {
	out := NewMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out.Set(k, normalize(m[k]))
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromGoMap(t)
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return FromGoMap(m)
	default:
		return v
	}
}

// Len returns the number of top-level entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the top-level keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Set stores value under key. Overwriting an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Append stores value under the next integer key (one past the highest
// integer key present, or "0") and returns that key.
func (m *Map) Append(value any) string {
	next := 0
	for _, k := range m.keys {
		if n, err := strconv.Atoi(k); err == nil && n >= next {
			next = n + 1
		}
	}
	key := strconv.Itoa(next)
	m.Set(key, value)
	return key
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// All returns an iterator over the top-level entries in insertion order.
// Each call returns a fresh iterator.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Nested *Map values are copied; leaves are shared.
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	out.keys = slices.Clone(m.keys)
	for k, v := range m.entries {
		if nested, ok := v.(*Map); ok {
			v = nested.Clone()
		}
		out.entries[k] = v
	}
	return out
}

// ToGoMap converts the Map, recursively, into plain Go maps.
func (m *Map) ToGoMap() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		if nested, ok := v.(*Map); ok {
			v = nested.ToGoMap()
		}
		out[k] = v
	}
	return out
}
