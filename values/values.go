package values

import (
	"iter"
	"strings"

	"github.com/spf13/cast"
)

// Values is the nested value store built from incoming cookies.
//
// Values read through dotted paths. Nested maps handed out by Get, Index,
// Iter and Map are copies, so a store only changes through its own Set,
// Append and Delete. Map and WithValues return new stores and leave the
// receiver untouched.
type Values struct {
	m *Map
}

// New wraps m in a store, which takes ownership of m. A nil map yields an
// empty store.
func New(m *Map) *Values {
	if m == nil {
		m = NewMap()
	}
	return &Values{m: m}
}

// FromMap builds a store from a plain Go map with arbitrary nesting.
func FromMap(m map[string]any) *Values {
	return New(FromGoMap(m))
}

// Get resolves path through nested maps and returns def when any segment is
// missing or a leaf is reached before the path ends. A nested map is returned
// as a copy.
func (v *Values) Get(path string, def any) any {
	if val, ok := v.lookup(path); ok {
		return detach(val)
	}
	return def
}

// Has reports whether path is present. A present nil value counts.
func (v *Values) Has(path string) bool {
	_, ok := v.lookup(path)
	return ok
}

// String returns the value at path converted to a string, or def when the
// path is missing or the value has no string form.
func (v *Values) String(path, def string) string {
	val, ok := v.lookup(path)
	if !ok {
		return def
	}
	s, err := cast.ToStringE(val)
	if err != nil {
		return def
	}
	return s
}

func (v *Values) lookup(path string) (any, bool) {
	// An exact top-level key wins over traversal.
	if val, ok := v.m.Get(path); ok {
		return val, true
	}

	current := v.m
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		val, ok := current.Get(segment)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		next, isMap := val.(*Map)
		if !isMap {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// All returns a copy of the full tree, preserving nesting and key order.
func (v *Values) All() *Map {
	return v.m.Clone()
}

// Len returns the number of top-level entries.
func (v *Values) Len() int {
	return v.m.Len()
}

// Map applies fn to every top-level entry and returns a new store with the
// same keys in the same order. Nested maps are passed to fn as a whole.
func (v *Values) Map(fn func(value any, key string) any) *Values {
	mapped := NewMap()
	for k, val := range v.m.All() {
		mapped.Set(k, detach(fn(detach(val), k)))
	}
	return New(mapped)
}

// WithValues returns a new store holding a copy of m, discarding the current
// content.
func (v *Values) WithValues(m *Map) *Values {
	return New(m.Clone())
}

// Iter returns an iterator over top-level entries in insertion order.
func (v *Values) Iter() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, val := range v.m.All() {
			if !yield(k, detach(val)) {
				return
			}
		}
	}
}

// Index returns the top-level entry stored under key.
func (v *Values) Index(key string) (any, bool) {
	val, ok := v.m.Get(key)
	return detach(val), ok
}

// Set writes a top-level entry in place. A nested map is stored as a copy.
func (v *Values) Set(key string, value any) {
	v.m.Set(key, detach(value))
}

// Append writes value under the next integer key and returns the key.
func (v *Values) Append(value any) string {
	return v.m.Append(detach(value))
}

// Delete removes a top-level entry in place.
func (v *Values) Delete(key string) {
	v.m.Delete(key)
}

// detach copies nested maps so they cannot alias the store's tree.
func detach(val any) any {
	if nested, ok := val.(*Map); ok {
		return nested.Clone()
	}
	return val
}
