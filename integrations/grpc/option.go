package cookiegrpc

import (
	"errors"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/core"
	"github.com/auth0/go-cookie-middleware/encryption"
)

// Option configures the cookie interceptor.
type Option func(*CookieInterceptor) error

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core for consistent logging across the stack.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WithEncrypter sets the Encrypter applied to cookie values.
//
// Example:
//
//	interceptor, _ := cookiegrpc.New(
//	    cookiegrpc.WithEncrypter(enc),
//	    cookiegrpc.WithLogger(logger),
//	)
func WithEncrypter(e encryption.Encrypter) Option {
	return func(i *CookieInterceptor) error {
		if e == nil {
			return errors.New("encrypter cannot be nil")
		}
		i.coreOpts = append(i.coreOpts, core.WithEncrypter(e))
		return nil
	}
}

// WithWhitelist exempts cookie names from encryption.
func WithWhitelist(names ...string) Option {
	return func(i *CookieInterceptor) error {
		i.coreOpts = append(i.coreOpts, core.WithWhitelist(names...))
		return nil
	}
}

// WithCookieFactory sets the factory used for outgoing collections.
//
// Default: cookie.NewFactory()
func WithCookieFactory(f *cookie.Factory) Option {
	return func(i *CookieInterceptor) error {
		if f == nil {
			return errors.New("cookie factory cannot be nil")
		}
		i.factory = f
		return nil
	}
}

// WithLogger sets an optional logger for the interceptor.
// The logger will be used by both the interceptor and core.
//
// The logger interface is compatible with log/slog.Logger and similar loggers.
func WithLogger(logger Logger) Option {
	return func(i *CookieInterceptor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		i.coreOpts = append(i.coreOpts, core.WithLogger(logger))
		i.logger = logger // Set on interceptor for its own logging
		return nil
	}
}

// WithMetrics sets an optional metrics sink for the core processor.
func WithMetrics(metrics core.Metrics) Option {
	return func(i *CookieInterceptor) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		i.coreOpts = append(i.coreOpts, core.WithMetrics(metrics))
		return nil
	}
}

// WithCookieExtractor sets a custom cookie extractor function.
// Default is MetadataCookieExtractor which reads the "cookie" metadata.
func WithCookieExtractor(extractor CookieExtractor) Option {
	return func(i *CookieInterceptor) error {
		if extractor == nil {
			return errors.New("cookie extractor cannot be nil")
		}
		i.cookieExtractor = extractor
		return nil
	}
}

// WithErrorHandler sets a custom error handler function.
// Default is DefaultErrorHandler which maps errors to gRPC status codes.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *CookieInterceptor) error {
		if handler == nil {
			return errors.New("error handler cannot be nil")
		}
		i.errorHandler = handler
		return nil
	}
}

// WithExcludedMethods excludes specific gRPC methods from cookie processing.
// Methods should be provided in the format: "/package.Service/Method"
// Example: "/grpc.health.v1.Health/Check"
func WithExcludedMethods(methods ...string) Option {
	return func(i *CookieInterceptor) error {
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}
