package values

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_Get(t *testing.T) {
	v := FromMap(map[string]any{
		"foo": map[string]any{"1": "Foo 1"},
		"bar": "Bar",
		"nil": nil,
	})

	testCases := []struct {
		name string
		path string
		def  any
		want any
	}{
		{name: "it resolves a nested path", path: "foo.1", want: "Foo 1"},
		{name: "it falls back to the default for a missing leaf", path: "foo.2", def: "Bar", want: "Bar"},
		{name: "it falls back when traversal hits a scalar", path: "bar.baz", def: "d", want: "d"},
		{name: "it returns top-level scalars", path: "bar", want: "Bar"},
		{name: "it returns a present nil", path: "nil", def: "d", want: nil},
		{name: "it falls back for an unknown root", path: "zoo", def: 1, want: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Get(tc.path, tc.def))
		})
	}

	t.Run("it returns nested maps as a whole", func(t *testing.T) {
		got, ok := v.Get("foo", nil).(*Map)
		require.True(t, ok)
		assert.Equal(t, []string{"1"}, got.Keys())
	})
}

func TestValues_Has(t *testing.T) {
	v := FromMap(map[string]any{
		"foo": map[string]any{"1": "Foo 1"},
		"nil": nil,
		"a.b": "dotted key",
	})

	assert.True(t, v.Has("foo"))
	assert.True(t, v.Has("foo.1"))
	assert.False(t, v.Has("foo.2"))
	assert.True(t, v.Has("nil"))
	assert.True(t, v.Has("a.b"))
	assert.Equal(t, "dotted key", v.Get("a.b", nil))
}

func TestValues_String(t *testing.T) {
	v := FromMap(map[string]any{"n": 42, "s": "str", "m": map[string]any{"x": "y"}})

	assert.Equal(t, "42", v.String("n", ""))
	assert.Equal(t, "str", v.String("s", ""))
	assert.Equal(t, "def", v.String("missing", "def"))
	assert.Equal(t, "def", v.String("m", "def"))
}

func TestValues_Map(t *testing.T) {
	original := FromMap(map[string]any{"a": "x", "b": "y", "c": map[string]any{"d": "z"}})

	var seenKeys []string
	mapped := original.Map(func(value any, key string) any {
		seenKeys = append(seenKeys, key)
		if s, ok := value.(string); ok {
			return strings.ToUpper(s)
		}
		return value
	})

	assert.Equal(t, []string{"a", "b", "c"}, seenKeys)
	assert.Equal(t, "X", mapped.Get("a", nil))
	assert.Equal(t, "z", mapped.Get("c.d", nil), "nested maps are not visited")
	assert.Equal(t, "x", original.Get("a", nil), "original store is untouched")
}

func TestValues_WithValues(t *testing.T) {
	original := FromMap(map[string]any{"a": "x"})
	replacement := NewMap()
	replacement.Set("b", "y")

	replaced := original.WithValues(replacement)

	assert.False(t, replaced.Has("a"))
	assert.Equal(t, "y", replaced.Get("b", nil))
	assert.Equal(t, "x", original.Get("a", nil))
}

func TestValues_Iter(t *testing.T) {
	m := NewMap()
	m.Set("z", 1)
	m.Set("a", 2)
	v := New(m)

	collect := func() []string {
		var keys []string
		for k := range v.Iter() {
			keys = append(keys, k)
		}
		return keys
	}

	assert.Equal(t, []string{"z", "a"}, collect())
	assert.Equal(t, []string{"z", "a"}, collect(), "each call restarts")
}

func TestValues_IndexAccess(t *testing.T) {
	v := New(nil)

	v.Set("foo", "Foo")
	assert.Equal(t, "0", v.Append("appended"))

	got, ok := v.Index("foo")
	require.True(t, ok)
	assert.Equal(t, "Foo", got)
	assert.Equal(t, 2, v.Len())

	v.Delete("foo")
	_, ok = v.Index("foo")
	assert.False(t, ok)
	assert.Equal(t, "appended", v.Get("0", nil))
}

func TestValues_AllIsACopy(t *testing.T) {
	v := FromMap(map[string]any{"a": "x"})
	all := v.All()
	all.Set("b", "y")

	assert.False(t, v.Has("b"))
}

func TestValues_NestedMapsAreDetached(t *testing.T) {
	newStore := func() *Values {
		return FromMap(map[string]any{"foo": map[string]any{"a": "A"}})
	}

	testCases := []struct {
		name   string
		mutate func(v *Values)
	}{
		{
			name: "it copies maps returned by Get",
			mutate: func(v *Values) {
				v.Get("foo", nil).(*Map).Delete("a")
			},
		},
		{
			name: "it copies maps returned by Index",
			mutate: func(v *Values) {
				nested, _ := v.Index("foo")
				nested.(*Map).Set("a", "changed")
			},
		},
		{
			name: "it copies maps yielded by Iter",
			mutate: func(v *Values) {
				for _, val := range v.Iter() {
					val.(*Map).Set("a", "changed")
				}
			},
		},
		{
			name: "it keeps mapped stores apart from the original",
			mutate: func(v *Values) {
				mapped := v.Map(func(value any, _ string) any { return value })
				mapped.Get("foo", nil).(*Map).Set("a", "changed")
				mapped.Set("foo", "replaced")
			},
		},
		{
			name: "it copies maps passed to Map callbacks",
			mutate: func(v *Values) {
				v.Map(func(value any, _ string) any {
					value.(*Map).Set("a", "changed")
					return value
				})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := newStore()
			tc.mutate(v)

			assert.True(t, v.Has("foo.a"))
			assert.Equal(t, "A", v.Get("foo.a", nil))
		})
	}

	t.Run("it copies maps given to WithValues and Set", func(t *testing.T) {
		nested := FromGoMap(map[string]any{"a": "A"})
		replacement := NewMap()
		replacement.Set("foo", nested)

		v := New(nil).WithValues(replacement)
		v.Set("bar", nested)
		nested.Set("a", "changed")
		replacement.Set("zoo", "added")

		assert.Equal(t, "A", v.Get("foo.a", nil))
		assert.Equal(t, "A", v.Get("bar.a", nil))
		assert.False(t, v.Has("zoo"))
	})
}
