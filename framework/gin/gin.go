// Package cookiegin adapts the cookie middleware to Gin.
package cookiegin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/values"
)

// Default keys under which the values and the outgoing collection are
// stored in the gin.Context.
const (
	DefaultValuesKey  = "cookies.values"
	DefaultCookiesKey = "cookies.outgoing"
)

var (
	ErrMissingValues  = errors.New("no cookie values found in context")
	ErrMissingCookies = errors.New("no outgoing cookies found in context")
)

// ginMiddlewareConfig holds all configuration for the middleware
type ginMiddlewareConfig struct {
	errorHandler func(*gin.Context, error)
	valuesKey    string
	cookiesKey   string
}

// NewGinMiddleware creates a Gin middleware over m. The decrypted values and
// the outgoing collection are available through GetValues and GetCookies, and
// through the request context as with the net/http middleware.
func NewGinMiddleware(m *cookiemiddleware.CookieMiddleware, opts ...Option) gin.HandlerFunc {
	config := &ginMiddlewareConfig{
		errorHandler: defaultGinErrorHandler,
		valuesKey:    DefaultValuesKey,
		cookiesKey:   DefaultCookiesKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		if m.Excluded(c.Request) {
			c.Next()
			return
		}

		c.Request = m.PrepareRequest(c.Request)

		if v, err := cookiemiddleware.GetValues(c.Request.Context()); err == nil {
			c.Set(config.valuesKey, v)
		}
		if cookies, err := cookiemiddleware.GetCookies(c.Request.Context()); err == nil {
			c.Set(config.cookiesKey, cookies)
		}

		w := &ginWriter{ResponseWriter: c.Writer, m: m, c: c, config: config}
		c.Writer = w
		c.Next()
		w.flush()
	}
}

func defaultGinErrorHandler(c *gin.Context, _ error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"message": "Something went wrong while processing cookies.",
	})
}

// GetValues returns the decrypted incoming values.
func GetValues(c *gin.Context, key string) (*values.Values, error) {
	if key == "" {
		key = DefaultValuesKey
	}
	v, ok := c.Get(key)
	if !ok {
		return nil, ErrMissingValues
	}
	vals, ok := v.(*values.Values)
	if !ok {
		return nil, ErrMissingValues
	}
	return vals, nil
}

// GetCookies returns the outgoing cookie collection.
func GetCookies(c *gin.Context, key string) (*cookie.Cookies, error) {
	if key == "" {
		key = DefaultCookiesKey
	}
	v, ok := c.Get(key)
	if !ok {
		return nil, ErrMissingCookies
	}
	cookies, ok := v.(*cookie.Cookies)
	if !ok {
		return nil, ErrMissingCookies
	}
	return cookies, nil
}
