package cookiemiddleware

import (
	"errors"
	"net/http"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/encryption"
)

// Option configures the CookieMiddleware.
// Returns error for validation failures.
type Option func(*CookieMiddleware) error

// WithEncrypter sets the Encrypter applied to cookie values.
//
// Example:
//
//	enc, err := encryption.NewChaCha20(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	middleware, err := cookiemiddleware.New(
//	    cookiemiddleware.WithEncrypter(enc),
//	)
func WithEncrypter(e encryption.Encrypter) Option {
	return func(m *CookieMiddleware) error {
		if e == nil {
			return ErrEncrypterNil
		}
		m.encrypter = e
		return nil
	}
}

// WithWhitelist exempts cookie names from encryption. Names are given in
// cookie form; "option[bar]" also exempts the incoming value "option.bar".
// The option may be repeated.
func WithWhitelist(names ...string) Option {
	return func(m *CookieMiddleware) error {
		m.whitelist = append(m.whitelist, names...)
		return nil
	}
}

// WithErrorHandler sets the handler called when outgoing cookies cannot be
// encrypted. See the ErrorHandler type for more information.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *CookieMiddleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithCookieFactory sets the factory used for outgoing collections. Cookies
// added through the collection get the factory's path, domain, secure and
// same-site defaults.
//
// Default: cookie.NewFactory()
func WithCookieFactory(f *cookie.Factory) Option {
	return func(m *CookieMiddleware) error {
		if f == nil {
			return ErrCookieFactoryNil
		}
		m.factory = f
		return nil
	}
}

// WithExclusionUrls configures URL patterns to exclude from cookie processing.
// URLs can be full URLs or just paths.
func WithExclusionUrls(exclusions []string) Option {
	return func(m *CookieMiddleware) error {
		if len(exclusions) == 0 {
			return ErrExclusionUrlsEmpty
		}
		m.exclusionURLHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path

			for _, exclusion := range exclusions {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
		return nil
	}
}

// WithLogger sets an optional logger for the middleware.
// The logger will be used by both the middleware and the core processor.
//
// The logger interface is compatible with log/slog.Logger and similar loggers.
//
// Example:
//
//	middleware, err := cookiemiddleware.New(
//	    cookiemiddleware.WithEncrypter(enc),
//	    cookiemiddleware.WithLogger(slog.Default()),
//	)
func WithLogger(logger Logger) Option {
	return func(m *CookieMiddleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used for spans around incoming and outgoing
// processing.
//
// Default: NoopTracer
func WithTracer(t Tracer) Option {
	return func(m *CookieMiddleware) error {
		if t == nil {
			return ErrTracerNil
		}
		m.tracer = t
		return nil
	}
}

// WithMetrics sets the metrics sink shared by the middleware and the core
// processor.
//
// Default: NoopMetrics
func WithMetrics(metrics Metrics) Option {
	return func(m *CookieMiddleware) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		m.metrics = metrics
		return nil
	}
}

// WithCookieExtractor sets the function that reads the request cookies.
//
// Default: RequestCookieExtractor
//
// Example:
//
//	middleware, err := cookiemiddleware.New(
//	    cookiemiddleware.WithCookieExtractor(cookiemiddleware.MultiCookieExtractor(
//	        cookiemiddleware.RequestCookieExtractor,
//	        cookiemiddleware.HeaderCookieExtractor("X-Forwarded-Cookie"),
//	    )),
//	)
func WithCookieExtractor(e CookieExtractor) Option {
	return func(m *CookieMiddleware) error {
		if e == nil {
			return ErrCookieExtractorNil
		}
		m.cookieExtractor = e
		return nil
	}
}

// Sentinel errors for configuration validation
var (
	ErrEncrypterNil       = errors.New("encrypter cannot be nil")
	ErrErrorHandlerNil    = errors.New("errorHandler cannot be nil")
	ErrCookieFactoryNil   = errors.New("cookie factory cannot be nil")
	ErrCookieExtractorNil = errors.New("cookie extractor cannot be nil")
	ErrExclusionUrlsEmpty = errors.New("exclusion URLs list cannot be empty")
	ErrLoggerNil          = errors.New("logger cannot be nil")
	ErrTracerNil          = errors.New("tracer cannot be nil")
	ErrMetricsNil         = errors.New("metrics cannot be nil")
)
