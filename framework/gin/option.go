package cookiegin

import (
	"github.com/gin-gonic/gin"
)

// Option defines a functional option for configuring the middleware
type Option func(*ginMiddlewareConfig)

// WithErrorHandler sets the handler called when outgoing cookies cannot be
// encrypted. It must write the whole response.
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *ginMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithValuesKey sets the gin.Context key for the incoming values.
func WithValuesKey(key string) Option {
	return func(config *ginMiddlewareConfig) {
		config.valuesKey = key
	}
}

// WithCookiesKey sets the gin.Context key for the outgoing collection.
func WithCookiesKey(key string) Option {
	return func(config *ginMiddlewareConfig) {
		config.cookiesKey = key
	}
}
