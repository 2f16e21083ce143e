package cookie

import (
	"iter"
	"slices"

	"github.com/auth0/go-cookie-middleware/values"
)

// clearLifetime is the lifetime used by Clear to expire a cookie.
const clearLifetime = -86400

// Cookies is an ordered collection of cookies.
//
// Add, AddCookie and Clear modify the collection in place. Filter, Map and
// the name/path/domain selectors return new collections. A Cookies value is
// owned by a single request and is not safe for concurrent use.
type Cookies struct {
	factory *Factory
	cookies []Cookie
}

// NewCookies returns a collection holding cs. A nil factory uses NewFactory().
func NewCookies(f *Factory, cs ...Cookie) *Cookies {
	if f == nil {
		f = NewFactory()
	}
	return &Cookies{factory: f, cookies: slices.Clone(cs)}
}

// AddCookie appends c.
func (c *Cookies) AddCookie(ck Cookie) *Cookies {
	c.cookies = append(c.cookies, ck)
	return c
}

// Add creates a cookie through the collection's factory and appends it.
func (c *Cookies) Add(p Params) *Cookies {
	return c.AddCookie(c.factory.Create(p))
}

// Set is shorthand for Add with only a name and value.
func (c *Cookies) Set(name, value string) *Cookies {
	return c.Add(Params{Name: name, Value: value})
}

type scope struct {
	path   *string
	domain *string
}

func (s scope) matches(ck Cookie) bool {
	if s.path != nil && *s.path != ck.path {
		return false
	}
	if s.domain != nil && *s.domain != ck.domain {
		return false
	}
	return true
}

// ScopeOption narrows Get and Clear to a path or domain.
type ScopeOption func(*scope)

// InPath restricts a lookup to cookies with the given path.
func InPath(path string) ScopeOption {
	return func(s *scope) {
		s.path = &path
	}
}

// InDomain restricts a lookup to cookies with the given domain.
func InDomain(domain string) ScopeOption {
	return func(s *scope) {
		s.domain = &domain
	}
}

func newScope(opts []ScopeOption) scope {
	var s scope
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Get returns the first cookie named name within the given scope.
func (c *Cookies) Get(name string, opts ...ScopeOption) (Cookie, bool) {
	s := newScope(opts)
	for _, ck := range c.cookies {
		if ck.name == name && s.matches(ck) {
			return ck, true
		}
	}
	return Cookie{}, false
}

// Clear removes every cookie named name within the given scope and queues an
// expired, empty cookie so the user agent deletes it too. Path and domain
// of the expired cookie come from the scope or else the factory defaults.
func (c *Cookies) Clear(name string, opts ...ScopeOption) *Cookies {
	s := newScope(opts)
	c.cookies = slices.DeleteFunc(c.cookies, func(ck Cookie) bool {
		return ck.name == name && s.matches(ck)
	})

	p := Params{Name: name, Lifetime: Lifetime(clearLifetime)}
	if s.path != nil {
		p.Path = *s.path
	}
	if s.domain != nil {
		p.Domain = *s.domain
	}
	return c.Add(p)
}

// First returns the first cookie.
func (c *Cookies) First() (Cookie, bool) {
	if len(c.cookies) == 0 {
		return Cookie{}, false
	}
	return c.cookies[0], true
}

// All returns a copy of the cookies in order.
func (c *Cookies) All() []Cookie {
	return slices.Clone(c.cookies)
}

// Len returns the number of cookies.
func (c *Cookies) Len() int {
	return len(c.cookies)
}

// Iter returns an iterator over index and cookie pairs.
func (c *Cookies) Iter() iter.Seq2[int, Cookie] {
	return slices.All(c.cookies)
}

// NameValues returns a name to value map. Later cookies win on duplicate names.
func (c *Cookies) NameValues() map[string]string {
	out := make(map[string]string, len(c.cookies))
	for _, ck := range c.cookies {
		out[ck.name] = ck.value
	}
	return out
}

// Filter returns a new collection with the cookies for which keep is true.
func (c *Cookies) Filter(keep func(Cookie) bool) *Cookies {
	var filtered []Cookie
	for _, ck := range c.cookies {
		if keep(ck) {
			filtered = append(filtered, ck)
		}
	}
	return &Cookies{factory: c.factory, cookies: filtered}
}

// Map returns a new collection with fn applied to every cookie.
func (c *Cookies) Map(fn func(Cookie) Cookie) *Cookies {
	out, _ := c.Transform(func(ck Cookie) (Cookie, error) {
		return fn(ck), nil
	})
	return out
}

// Transform is Map with a fallible fn. The first error aborts and is returned
// with a nil collection.
func (c *Cookies) Transform(fn func(Cookie) (Cookie, error)) (*Cookies, error) {
	mapped := make([]Cookie, 0, len(c.cookies))
	for _, ck := range c.cookies {
		out, err := fn(ck)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, out)
	}
	return &Cookies{factory: c.factory, cookies: mapped}, nil
}

// Name returns the cookies named name.
func (c *Cookies) Name(name string) *Cookies {
	return c.Filter(func(ck Cookie) bool { return ck.name == name })
}

// Path returns the cookies with the given path.
func (c *Cookies) Path(path string) *Cookies {
	return c.Filter(func(ck Cookie) bool { return ck.path == path })
}

// Domain returns the cookies with the given domain.
func (c *Cookies) Domain(domain string) *Cookies {
	return c.Filter(func(ck Cookie) bool { return ck.domain == domain })
}

// Header appends the Set-Cookie value of every cookie to existing and returns
// the result.
func (c *Cookies) Header(existing ...string) []string {
	out := slices.Clone(existing)
	for _, ck := range c.cookies {
		out = append(out, ck.Header())
	}
	return out
}

// Values decomposes bracket names into dotted paths and rebuilds the nested
// store, as a server would see these cookies on the next request.
func (c *Cookies) Values() *values.Values {
	pairs := make([]values.Pair, 0, len(c.cookies))
	for _, ck := range c.cookies {
		pairs = append(pairs, values.Decompose(ck.name, ck.value))
	}
	return values.New(values.Unflatten(pairs))
}
