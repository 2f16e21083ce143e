/*
Package cookiemiddleware provides HTTP middleware for structured, optionally
encrypted cookies.

Incoming cookies with bracket names such as "option[foo]" are decoded into a
nested value store ("option.foo"), decrypted and stored in the request
context. Handlers add outgoing cookies to a per-request collection, which is
encrypted and written as Set-Cookie headers before the response header is
sent. The middleware follows the Core-Adapter pattern, with this package
serving as the net/http transport adapter over package core.

# Quick Start

	import (
	    cookiemiddleware "github.com/auth0/go-cookie-middleware"
	    "github.com/auth0/go-cookie-middleware/encryption"
	)

	func main() {
	    enc, err := encryption.New(key) // 32 byte key
	    if err != nil {
	        log.Fatal(err)
	    }

	    middleware, err := cookiemiddleware.New(
	        cookiemiddleware.WithEncrypter(enc),
	        cookiemiddleware.WithWhitelist("consent"),
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    http.Handle("/", middleware.Handler(handler))
	    http.ListenAndServe(":8080", nil)
	}

# Reading and Writing Cookies

	func handler(w http.ResponseWriter, r *http.Request) {
	    v, _ := cookiemiddleware.GetValues(r.Context())
	    theme := v.String("settings.theme", "light")

	    cookies := cookiemiddleware.MustGetCookies(r.Context())
	    cookies.Add(cookie.Params{
	        Name:     "settings[theme]",
	        Value:    "dark",
	        Lifetime: cookie.Lifetime(30 * 24 * 3600),
	    })
	    cookies.Clear("legacy")

	    fmt.Fprintln(w, theme)
	}

Values that fail to decrypt, because they were tampered with or encrypted
under an old key, read back as absent. They never fail the request.

# Whitelist

Whitelisted names are neither encrypted on the way out nor decrypted on the
way in. Names are given in cookie form; "option[bar]" exempts the outgoing
cookie "option[bar]" and the incoming value "option.bar".

# Error Handling

If an outgoing cookie cannot be encrypted no Set-Cookie header is sent and
the ErrorHandler replaces the response. DefaultErrorHandler responds with:

	500 {"message":"Something went wrong while processing cookies."}

# Observability

	middleware, err := cookiemiddleware.New(
	    cookiemiddleware.WithEncrypter(enc),
	    cookiemiddleware.WithLogger(slog.Default()),
	    cookiemiddleware.WithTracer(cookiemiddleware.NewOpenTelemetryTracer(otel.Tracer("cookies"))),
	    cookiemiddleware.WithMetrics(cookiemiddleware.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
	)

Adapters for logrus, zap and zerolog are provided by NewLogrusLogger,
NewZapLogger and NewZerologLogger.

# Frameworks

Gin and Echo adapters live in framework/gin and framework/echo, gRPC
interceptors in integrations/grpc. Configuration from files and environment
is provided by package config.
*/
package cookiemiddleware
