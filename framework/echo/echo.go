// Package cookieecho adapts the cookie middleware to Echo.
package cookieecho

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/values"
)

// Default keys under which the values and the outgoing collection are
// stored in the echo.Context.
var (
	DefaultValuesKey  = "cookies.values"
	DefaultCookiesKey = "cookies.outgoing"
)

// echoMiddlewareConfig holds all configuration for the middleware
type echoMiddlewareConfig struct {
	errorHandler func(echo.Context, error)
	valuesKey    string
	cookiesKey   string
}

// NewEchoMiddleware creates an Echo middleware over the options of the
// net/http middleware.
func NewEchoMiddleware(opts []cookiemiddleware.Option, echoOpts ...Option) (echo.MiddlewareFunc, error) {
	config := &echoMiddlewareConfig{
		errorHandler: defaultEchoErrorHandler,
		valuesKey:    DefaultValuesKey,
		cookiesKey:   DefaultCookiesKey,
	}

	for _, opt := range echoOpts {
		opt(config)
	}

	middlewareOpts := append([]cookiemiddleware.Option{
		cookiemiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			// Adapt the standard error handler to the Echo context
			e := echo.New()
			c := e.NewContext(r, w)
			config.errorHandler(c, err)
		}),
	}, opts...)

	middleware, err := cookiemiddleware.New(middlewareOpts...)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			raw := res.Writer
			defer func() { res.Writer = raw }()

			var nextErr error
			var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
				c.SetRequest(r)
				res.Writer = w

				if v, err := cookiemiddleware.GetValues(r.Context()); err == nil {
					c.Set(config.valuesKey, v)
				}
				if cookies, err := cookiemiddleware.GetCookies(r.Context()); err == nil {
					c.Set(config.cookiesKey, cookies)
				}

				nextErr = next(c)
			}

			middleware.Handler(handler).ServeHTTP(raw, c.Request())
			return nextErr
		}
	}, nil
}

func defaultEchoErrorHandler(c echo.Context, _ error) {
	_ = c.JSON(http.StatusInternalServerError, map[string]string{
		"message": "Something went wrong while processing cookies.",
	})
}

// GetValues extracts the decrypted incoming values from the Echo context.
// An empty key means DefaultValuesKey.
func GetValues(c echo.Context, key string) (*values.Values, bool) {
	if key == "" {
		key = DefaultValuesKey
	}
	v, ok := c.Get(key).(*values.Values)
	return v, ok
}

// GetCookies extracts the outgoing cookie collection from the Echo context.
// An empty key means DefaultCookiesKey.
func GetCookies(c echo.Context, key string) (*cookie.Cookies, bool) {
	if key == "" {
		key = DefaultCookiesKey
	}
	cookies, ok := c.Get(key).(*cookie.Cookies)
	return cookies, ok
}
