package cookieecho

import (
	"github.com/labstack/echo/v4"
)

// Option is a function that configures the middleware
type Option func(*echoMiddlewareConfig)

// WithErrorHandler sets a custom error handler, called when outgoing
// cookies cannot be encrypted.
func WithErrorHandler(handler func(echo.Context, error)) Option {
	return func(config *echoMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithValuesKey sets a custom context key to store the incoming values
func WithValuesKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.valuesKey = key
	}
}

// WithCookiesKey sets a custom context key to store the outgoing collection
func WithCookiesKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.cookiesKey = key
	}
}
