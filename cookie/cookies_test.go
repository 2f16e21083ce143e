package cookie

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCookies(t *testing.T) {
	foo := New("foo", "value")
	bar := New("bar", "value")

	cookies := NewCookies(nil, foo, bar)

	assert.Equal(t, []Cookie{foo, bar}, cookies.All())
	assert.Equal(t, 2, cookies.Len())
}

func TestCookies_Add(t *testing.T) {
	cookies := NewFactory(DefaultDomain("example.com")).Cookies()
	cookies.Add(Params{Name: "foo", Value: "Foo"}).Set("bar", "Bar")

	require.Equal(t, 2, cookies.Len())
	foo, ok := cookies.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "example.com", foo.Domain())
	assert.Equal(t, SameSiteLax, foo.SameSite())
}

func TestCookies_Get(t *testing.T) {
	cookies := NewFactory().Cookies()
	cookies.Add(Params{Name: "foo", Value: "root"})
	cookies.Add(Params{Name: "foo", Value: "admin", Path: "/admin"})
	cookies.Add(Params{Name: "foo", Value: "sub", Path: "/admin", Domain: "sub.example.com"})

	testCases := []struct {
		name      string
		opts      []ScopeOption
		wantValue string
		wantOK    bool
	}{
		{name: "by name only", wantValue: "root", wantOK: true},
		{name: "by path", opts: []ScopeOption{InPath("/admin")}, wantValue: "admin", wantOK: true},
		{name: "by path and domain", opts: []ScopeOption{InPath("/admin"), InDomain("sub.example.com")}, wantValue: "sub", wantOK: true},
		{name: "by empty domain", opts: []ScopeOption{InPath("/admin"), InDomain("")}, wantValue: "admin", wantOK: true},
		{name: "no match", opts: []ScopeOption{InPath("/other")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cookies.Get("foo", tc.opts...)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantValue, got.Value())
		})
	}

	_, ok := cookies.Get("missing")
	assert.False(t, ok)
}

func TestCookies_Clear(t *testing.T) {
	cookies := NewFactory().Cookies()
	cookies.Add(Params{Name: "foo", Value: "root"})
	cookies.Add(Params{Name: "foo", Value: "admin", Path: "/admin"})
	cookies.Add(Params{Name: "bar", Value: "Bar"})

	cookies.Clear("foo", InPath("/admin"))

	require.Equal(t, 3, cookies.Len())

	root, ok := cookies.Get("foo", InPath("/"))
	require.True(t, ok)
	assert.Equal(t, "root", root.Value())

	cleared, ok := cookies.Get("foo", InPath("/admin"))
	require.True(t, ok)
	assert.Equal(t, "", cleared.Value())
	lifetime, ok := cleared.Lifetime()
	assert.True(t, ok)
	assert.Equal(t, -86400, lifetime)

	cookies.Clear("bar")
	bar, ok := cookies.Get("bar")
	require.True(t, ok)
	assert.Equal(t, "", bar.Value())
	assert.Equal(t, "/", bar.Path())
}

func TestCookies_FirstAndIter(t *testing.T) {
	empty := NewCookies(nil)
	_, ok := empty.First()
	assert.False(t, ok)

	cookies := NewCookies(nil, New("a", "1"), New("b", "2"))
	first, ok := cookies.First()
	require.True(t, ok)
	assert.Equal(t, "a", first.Name())

	var names []string
	for i, c := range cookies.Iter() {
		assert.Equal(t, len(names), i)
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestCookies_Selectors(t *testing.T) {
	cookies := NewFactory().Cookies()
	cookies.Add(Params{Name: "foo", Value: "1", Domain: "a.com"})
	cookies.Add(Params{Name: "foo", Value: "2", Path: "/x", Domain: "b.com"})
	cookies.Add(Params{Name: "bar", Value: "3", Path: "/x", Domain: "a.com"})

	assert.Equal(t, 2, cookies.Name("foo").Len())
	assert.Equal(t, 2, cookies.Path("/x").Len())
	assert.Equal(t, 2, cookies.Domain("a.com").Len())
	assert.Equal(t, 1, cookies.Name("foo").Path("/x").Domain("b.com").Len())
	assert.Equal(t, 3, cookies.Len(), "selectors do not modify the collection")
}

func TestCookies_Map(t *testing.T) {
	cookies := NewCookies(nil, New("a", "x"), New("b", "y"))

	upper := cookies.Map(func(c Cookie) Cookie {
		return c.WithValue(strings.ToUpper(c.Value()))
	})

	assert.Equal(t, map[string]string{"a": "X", "b": "Y"}, upper.NameValues())
	assert.Equal(t, map[string]string{"a": "x", "b": "y"}, cookies.NameValues())
}

func TestCookies_Transform(t *testing.T) {
	cookies := NewCookies(nil, New("a", "x"), New("b", "y"))
	boom := errors.New("boom")

	out, err := cookies.Transform(func(c Cookie) (Cookie, error) {
		if c.Name() == "b" {
			return Cookie{}, boom
		}
		return c, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestCookies_Header(t *testing.T) {
	cookies := NewCookies(nil, New("a", "1"), New("b", "2"))

	header := cookies.Header("existing=1")

	require.Len(t, header, 3)
	assert.Equal(t, "existing=1", header[0])
	assert.Equal(t, "a=1; Path=/; Secure; HttpOnly", header[1])
	assert.Equal(t, "b=2; Path=/; Secure; HttpOnly", header[2])

	assert.Empty(t, NewCookies(nil).Header())
}

func TestCookies_Values(t *testing.T) {
	cookies := NewFactory().Cookies()
	cookies.Set("foo", "Foo")
	cookies.Set("option[foo]", "Option Foo")
	cookies.Set("option[bar]", "Option Bar")

	v := cookies.Values()

	assert.Equal(t, map[string]any{
		"foo": "Foo",
		"option": map[string]any{
			"foo": "Option Foo",
			"bar": "Option Bar",
		},
	}, v.All().ToGoMap())
	assert.Equal(t, []string{"foo", "option"}, v.All().Keys())
}
