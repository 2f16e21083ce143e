package values

import "strings"

// Pair is a single leaf of a nested tree addressed by its dotted path.
type Pair struct {
	Path  string
	Value any
}

// Flatten walks m depth first and returns one Pair per leaf, in order.
// Intermediate maps are never emitted, so an empty nested map disappears.
func Flatten(m *Map) []Pair {
	var pairs []Pair
	flatten(m, "", &pairs)
	return pairs
}

func flatten(m *Map, prefix string, pairs *[]Pair) {
	for k, v := range m.All() {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		if nested, ok := v.(*Map); ok {
			flatten(nested, path, pairs)
			continue
		}
		*pairs = append(*pairs, Pair{Path: path, Value: v})
	}
}

// Unflatten rebuilds a nested Map from leaf pairs. Paths sharing a prefix
// merge into the same intermediate map. A scalar sitting where a later path
// needs a map is replaced by that map.
func Unflatten(pairs []Pair) *Map {
	root := NewMap()
	for _, p := range pairs {
		set(root, p.Path, p.Value)
	}
	return root
}

func set(root *Map, path string, value any) {
	segments := strings.Split(path, ".")
	current := root
	for _, segment := range segments[:len(segments)-1] {
		existing, ok := current.Get(segment)
		next, isMap := existing.(*Map)
		if !ok || !isMap {
			next = NewMap()
			current.Set(segment, next)
		}
		current = next
	}
	current.Set(segments[len(segments)-1], value)
}
