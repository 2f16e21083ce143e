package cookie

import (
	"github.com/spf13/cast"

	"github.com/auth0/go-cookie-middleware/values"
)

// Params describes a cookie to create. Zero values mean "use the factory
// default": an empty Path, Domain or SameSite, and a nil Secure. HTTPOnly
// defaults to true when nil. A nil Lifetime creates a session cookie.
type Params struct {
	Name     string
	Value    string
	Lifetime *int
	Path     string
	Domain   string
	Secure   *bool
	HTTPOnly *bool
	SameSite string
}

// Factory creates cookies with configured defaults.
type Factory struct {
	path     string
	domain   string
	secure   bool
	sameSite SameSite
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// DefaultPath sets the Path used when Params.Path is empty.
//
// Default: "/"
func DefaultPath(path string) FactoryOption {
	return func(f *Factory) {
		f.path = path
	}
}

// DefaultDomain sets the Domain used when Params.Domain is empty.
//
// Default: "" (host-only cookie)
func DefaultDomain(domain string) FactoryOption {
	return func(f *Factory) {
		f.domain = domain
	}
}

// DefaultSecure sets the Secure flag used when Params.Secure is nil.
//
// Default: true
func DefaultSecure(secure bool) FactoryOption {
	return func(f *Factory) {
		f.secure = secure
	}
}

// DefaultSameSite sets the SameSite attribute used when Params.SameSite is
// empty. Unknown values fall back to Lax.
//
// Default: Lax
func DefaultSameSite(sameSite string) FactoryOption {
	return func(f *Factory) {
		f.sameSite = ParseSameSite(sameSite)
	}
}

// NewFactory creates a Factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		path:     "/",
		secure:   true,
		sameSite: SameSiteLax,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds a cookie from p, filling unset fields from the defaults.
func (f *Factory) Create(p Params) Cookie {
	c := Cookie{
		name:     p.Name,
		value:    p.Value,
		path:     f.path,
		domain:   f.domain,
		secure:   f.secure,
		httpOnly: true,
		sameSite: f.sameSite,
	}

	if p.Lifetime != nil {
		c.lifetime, c.hasLifetime = *p.Lifetime, true
	}
	if p.Path != "" {
		c.path = p.Path
	}
	if p.Domain != "" {
		c.domain = p.Domain
	}
	if p.Secure != nil {
		c.secure = *p.Secure
	}
	if p.HTTPOnly != nil {
		c.httpOnly = *p.HTTPOnly
	}
	if p.SameSite != "" {
		c.sameSite = ParseSameSite(p.SameSite)
	}
	return c
}

// paramField maps one key of a loosely-typed cookie definition onto Params.
// The assign function receives the raw value and must fall back to the
// documented default when the type does not fit.
type paramField struct {
	key    string
	assign func(p *Params, raw any)
}

// paramFields is the coercion table used by CreateFromMap:
//
//	name, value        string, else ""
//	lifetime           integer or numeric string, else nil (session)
//	path, domain       string, else "" (factory default)
//	secure, httpOnly   bool, else true
//	sameSite           string, else "" (factory default)
var paramFields = []paramField{
	{key: "name", assign: func(p *Params, raw any) { p.Name = stringOr(raw, "") }},
	{key: "value", assign: func(p *Params, raw any) { p.Value = stringOr(raw, "") }},
	{key: "lifetime", assign: func(p *Params, raw any) { p.Lifetime = intOrNil(raw) }},
	{key: "path", assign: func(p *Params, raw any) { p.Path = stringOr(raw, "") }},
	{key: "domain", assign: func(p *Params, raw any) { p.Domain = stringOr(raw, "") }},
	{key: "secure", assign: func(p *Params, raw any) { p.Secure = boolOr(raw, true) }},
	{key: "httpOnly", assign: func(p *Params, raw any) { p.HTTPOnly = boolOr(raw, true) }},
	{key: "sameSite", assign: func(p *Params, raw any) { p.SameSite = stringOr(raw, "") }},
}

// ParamsFromMap reads cookie parameters from an untrusted map. It never
// fails; see paramFields for how each field is coerced.
func ParamsFromMap(m map[string]any) Params {
	var p Params
	for _, field := range paramFields {
		if raw, ok := m[field.key]; ok {
			field.assign(&p, raw)
		}
	}
	return p
}

// CreateFromMap builds a cookie from an untrusted map such as decoded JSON.
func (f *Factory) CreateFromMap(m map[string]any) Cookie {
	return f.Create(ParamsFromMap(m))
}

func stringOr(raw any, def string) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return def
}

func boolOr(raw any, def bool) *bool {
	if b, ok := raw.(bool); ok {
		return &b
	}
	return &def
}

func intOrNil(raw any) *int {
	switch raw.(type) {
	case nil, bool:
		return nil
	}

	if n, err := cast.ToIntE(raw); err == nil {
		return &n
	}
	// Numeric strings with a fraction ("3600.5") truncate like numbers do.
	if _, isString := raw.(string); isString {
		if f, err := cast.ToFloat64E(raw); err == nil {
			n := int(f)
			return &n
		}
	}
	return nil
}

// Cookies returns a new collection holding cs that creates further cookies
// through f.
func (f *Factory) Cookies(cs ...Cookie) *Cookies {
	return NewCookies(f, cs...)
}

// CookiesFromKeyValuePairs flattens a nested map into bracket-named cookies:
//
//	{"bar": {"bar1": "x"}} -> bar[bar1]=x
//
// Only scalar leaves become cookies.
func (f *Factory) CookiesFromKeyValuePairs(m map[string]any) *Cookies {
	c := f.Cookies()
	for _, pair := range values.Flatten(values.FromGoMap(m)) {
		value, ok := scalarString(pair.Value)
		if !ok {
			continue
		}
		c.Add(Params{Name: values.ToCookieName(pair.Path), Value: value})
	}
	return c
}

// CookiesFromMaps builds cookies from a list of loosely-typed definitions.
// Entries that are not maps are skipped.
func (f *Factory) CookiesFromMaps(list []any) *Cookies {
	c := f.Cookies()
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			c.AddCookie(f.CreateFromMap(m))
		}
	}
	return c
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		if t {
			return "1", true
		}
		return "", true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return cast.ToString(t), true
	default:
		return "", false
	}
}
