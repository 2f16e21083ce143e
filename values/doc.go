/*
Package values provides the nested value store that backs incoming cookie data.

Cookie names may use bracket notation (`option[foo]`) to describe nested
structure. This package converts those names to dotted paths (`option.foo`),
keeps the resulting tree in an insertion-ordered Map, and can flatten a tree
into leaf pairs and rebuild it again.

# Reading values

	v := values.FromMap(map[string]any{
	    "foo": map[string]any{"1": "Foo 1"},
	})

	v.Get("foo.1", nil)   // "Foo 1"
	v.Get("foo.2", "Bar") // "Bar"
	v.Has("foo")          // true

# Flattening

Flatten walks the tree depth first and emits only leaves:

	pairs := values.Flatten(v.All())
	// [{Path: "foo.1", Value: "Foo 1"}]

	rebuilt := values.New(values.Unflatten(pairs))

A Values instance is never mutated by Map or WithValues; both return a new
store. The index methods (Set, Append, Delete) are top-level escapes used
while assembling a store and are not path aware.
*/
package values
