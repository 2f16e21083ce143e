/*
Package cookie models HTTP cookies as immutable values and groups them in an
ordered collection.

A Cookie is a value type: every With* method returns a modified copy. The
Factory applies site-wide defaults (path, domain, secure, SameSite) and can
build cookies from loosely-typed maps such as decoded JSON or YAML, falling
back to safe defaults for fields of the wrong type.

	f := cookie.NewFactory(cookie.DefaultDomain(".example.com"))

	c := f.Create(cookie.Params{
	    Name:     "prefs[theme]",
	    Value:    "dark",
	    Lifetime: cookie.Lifetime(3600),
	})

	c.Header()
	// prefs%5Btheme%5D=dark; Expires=...; Max-Age=3600; Path=/; Domain=.example.com; Secure; HttpOnly; SameSite=Lax

Cookies is the mutable, ordered collection the middleware hands to handlers
for queuing outgoing cookies. Several cookies may share a name as long as
they differ in path or domain.
*/
package cookie
