package cookie

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Cookie is an immutable HTTP cookie.
type Cookie struct {
	name        string
	value       string
	lifetime    int
	hasLifetime bool
	path        string
	domain      string
	secure      bool
	httpOnly    bool
	sameSite    SameSite
}

// New returns a session cookie with Path "/", Secure and HttpOnly set and no
// SameSite attribute. Use a Factory to apply configured defaults instead.
func New(name, value string) Cookie {
	return Cookie{
		name:     name,
		value:    value,
		path:     "/",
		secure:   true,
		httpOnly: true,
	}
}

// Lifetime returns a pointer to seconds, for use in Params.
func Lifetime(seconds int) *int {
	return &seconds
}

// Name returns the cookie name as given, before escaping.
func (c Cookie) Name() string { return c.name }

// Value returns the cookie value as given, before escaping.
func (c Cookie) Value() string { return c.value }

// Lifetime returns the lifetime in seconds. ok is false for session cookies.
// A negative lifetime expires the cookie in the user agent.
func (c Cookie) Lifetime() (seconds int, ok bool) {
	return c.lifetime, c.hasLifetime
}

// Expires returns the expiry time relative to now. ok is false for session cookies.
func (c Cookie) Expires(now time.Time) (t time.Time, ok bool) {
	if !c.hasLifetime {
		return time.Time{}, false
	}
	return now.Add(time.Duration(c.lifetime) * time.Second), true
}

// Path returns the Path attribute, empty when unset.
func (c Cookie) Path() string { return c.path }

// Domain returns the Domain attribute, empty when unset.
func (c Cookie) Domain() string { return c.domain }

// Secure reports whether the Secure attribute is set.
func (c Cookie) Secure() bool { return c.secure }

// HTTPOnly reports whether the HttpOnly attribute is set.
func (c Cookie) HTTPOnly() bool { return c.httpOnly }

// SameSite returns the SameSite attribute, empty when unset.
func (c Cookie) SameSite() SameSite { return c.sameSite }

// WithValue returns a copy with value replaced.
func (c Cookie) WithValue(value string) Cookie {
	c.value = value
	return c
}

// WithLifetime returns a copy expiring seconds from when the header is written.
func (c Cookie) WithLifetime(seconds int) Cookie {
	c.lifetime, c.hasLifetime = seconds, true
	return c
}

// WithSessionLifetime returns a copy without a lifetime.
func (c Cookie) WithSessionLifetime() Cookie {
	c.lifetime, c.hasLifetime = 0, false
	return c
}

// WithPath returns a copy with the Path attribute set. An empty path
// removes the attribute.
func (c Cookie) WithPath(path string) Cookie {
	c.path = path
	return c
}

// WithDomain returns a copy with the Domain attribute set. An empty domain
// removes the attribute.
func (c Cookie) WithDomain(domain string) Cookie {
	c.domain = domain
	return c
}

// WithSecure returns a copy with the Secure attribute switched on or off.
func (c Cookie) WithSecure(secure bool) Cookie {
	c.secure = secure
	return c
}

// WithHTTPOnly returns a copy with the HttpOnly attribute switched on or off.
func (c Cookie) WithHTTPOnly(httpOnly bool) Cookie {
	c.httpOnly = httpOnly
	return c
}

// WithSameSite returns a copy with the SameSite attribute set. An empty
// value removes the attribute.
func (c Cookie) WithSameSite(sameSite SameSite) Cookie {
	c.sameSite = sameSite
	return c
}

// String returns the Set-Cookie header value.
func (c Cookie) String() string {
	return c.Header()
}

// Header returns the Set-Cookie header value using the current time for Expires.
func (c Cookie) Header() string {
	return c.HeaderAt(time.Now())
}

// HeaderAt returns the Set-Cookie header value with Expires computed from now.
// Attributes are written in a fixed order: Expires, Max-Age, Path, Domain,
// Secure, HttpOnly, SameSite.
func (c Cookie) HeaderAt(now time.Time) string {
	var b strings.Builder
	b.WriteString(Escape(c.name))
	b.WriteByte('=')
	b.WriteString(Escape(c.value))

	if expires, ok := c.Expires(now); ok {
		b.WriteString("; Expires=")
		b.WriteString(expires.UTC().Format(http.TimeFormat))
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.lifetime))
	}
	if c.path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.path)
	}
	if c.domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.domain)
	}
	if c.secure {
		b.WriteString("; Secure")
	}
	if c.httpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.sameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(string(c.sameSite))
	}
	return b.String()
}

// Escape percent-encodes s, leaving only RFC 3986 unreserved characters.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Unescape reverses Escape. Malformed escapes are returned unchanged.
func Unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	unescaped, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return unescaped
}
