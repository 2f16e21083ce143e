package cookiemiddleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/core"
	"github.com/auth0/go-cookie-middleware/encryption"
	"github.com/auth0/go-cookie-middleware/values"
)

// CookieMiddleware decodes incoming cookies into nested values and writes
// the outgoing cookie collection as Set-Cookie headers.
type CookieMiddleware struct {
	processor           *core.Processor
	factory             *cookie.Factory
	cookieExtractor     CookieExtractor
	errorHandler        ErrorHandler
	exclusionURLHandler ExclusionURLHandler
	logger              Logger
	tracer              Tracer
	metrics             Metrics

	// Temporary fields used during construction
	encrypter encryption.Encrypter
	whitelist []string
}

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core for consistent logging across the stack.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ExclusionURLHandler reports whether a request bypasses cookie processing.
// Excluded requests get neither values nor an outgoing collection.
type ExclusionURLHandler func(r *http.Request) bool

// New constructs a new CookieMiddleware instance with the supplied options.
// Without WithEncrypter cookie values pass through unchanged.
//
// Example:
//
//	enc, err := encryption.New(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	middleware, err := cookiemiddleware.New(
//	    cookiemiddleware.WithEncrypter(enc),
//	    cookiemiddleware.WithWhitelist("consent"),
//	)
//	if err != nil {
//	    log.Fatalf("failed to create middleware: %v", err)
//	}
func New(opts ...Option) (*CookieMiddleware, error) {
	m := &CookieMiddleware{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	m.applyDefaults()

	if err := m.createProcessor(); err != nil {
		return nil, fmt.Errorf("failed to create processor: %w", err)
	}

	return m, nil
}

// applyDefaults sets default values for optional fields
func (m *CookieMiddleware) applyDefaults() {
	if m.errorHandler == nil {
		m.errorHandler = DefaultErrorHandler
	}
	if m.factory == nil {
		m.factory = cookie.NewFactory()
	}
	if m.cookieExtractor == nil {
		m.cookieExtractor = RequestCookieExtractor
	}
	if m.tracer == nil {
		m.tracer = &NoopTracer{}
	}
	if m.metrics == nil {
		m.metrics = &NoopMetrics{}
	}
}

// createProcessor creates the core.Processor with the configured options
func (m *CookieMiddleware) createProcessor() error {
	coreOpts := []core.Option{
		core.WithWhitelist(m.whitelist...),
		core.WithMetrics(m.metrics),
	}
	if m.encrypter != nil {
		coreOpts = append(coreOpts, core.WithEncrypter(m.encrypter))
	}
	if m.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(m.logger))
	}

	processor, err := core.New(coreOpts...)
	if err != nil {
		return err
	}
	m.processor = processor
	return nil
}

// Processor returns the processor shared by all requests, e.g. to whitelist
// more names at runtime.
func (m *CookieMiddleware) Processor() *core.Processor {
	return m.processor
}

// Factory returns the factory used for outgoing collections.
func (m *CookieMiddleware) Factory() *cookie.Factory {
	return m.factory
}

// Handler wraps next. Handlers read incoming values with GetValues and add
// outgoing cookies to the collection returned by GetCookies. The collection
// is encrypted and written before the first byte of the response.
func (m *CookieMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Excluded(r) {
			next.ServeHTTP(w, r)
			return
		}

		r = m.PrepareRequest(r)

		cw := &cookieWriter{ResponseWriter: w, m: m, r: r}
		next.ServeHTTP(cw, r)
		cw.flush()
	})
}

// Excluded reports whether r matches the configured exclusions. Framework
// adapters skip PrepareRequest and WriteCookies for excluded requests.
func (m *CookieMiddleware) Excluded(r *http.Request) bool {
	if m.exclusionURLHandler == nil || !m.exclusionURLHandler(r) {
		return false
	}
	if m.logger != nil {
		m.logger.Debug("skipping cookie processing for excluded URL",
			"method", r.Method,
			"path", r.URL.Path)
	}
	return true
}

// HandlerWithNext is the Negroni style form of Handler.
func (m *CookieMiddleware) HandlerWithNext(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	m.Handler(next).ServeHTTP(w, r)
}

// PrepareRequest extracts the request cookies, decrypts them and returns a
// shallow copy of r whose context carries the values and an empty outgoing
// collection. Framework adapters call it before their handler chain.
func (m *CookieMiddleware) PrepareRequest(r *http.Request) *http.Request {
	span := m.tracer.StartSpan(r.Context(), SpanIncoming)
	defer span.Finish()

	cookies, err := m.cookieExtractor(r)
	if err != nil {
		span.RecordError(err)
		if m.logger != nil {
			m.logger.Warn("failed to extract request cookies", "error", err)
		}
		cookies = nil
	}

	incoming := ValuesFromCookies(cookies)
	span.SetTag(AttrCookieCount, len(cookies))
	span.SetTag(AttrEncrypted, m.processor.HasEncrypter())

	v := m.processor.ProcessValues(incoming)

	ctx := core.SetValues(r.Context(), v)
	ctx = core.SetCookies(ctx, m.factory.Cookies())
	return r.WithContext(ctx)
}

// WriteCookies encrypts the outgoing collection stored in ctx and appends
// one Set-Cookie value per cookie to header. Nothing is written when
// encryption fails. A context without a collection is a no-op.
func (m *CookieMiddleware) WriteCookies(ctx context.Context, header http.Header) error {
	outgoing, err := core.GetCookies(ctx)
	if err != nil {
		return nil
	}

	span := m.tracer.StartSpan(ctx, SpanOutgoing)
	defer span.Finish()
	span.SetTag(AttrCookieCount, outgoing.Len())
	span.SetTag(AttrEncrypted, m.processor.HasEncrypter())

	processed, err := m.processor.ProcessCookies(outgoing)
	if err != nil {
		span.RecordError(err)
		if m.logger != nil {
			m.logger.Error("failed to encrypt outgoing cookies", "error", err)
		}
		return err
	}

	for _, v := range processed.Header() {
		header.Add("Set-Cookie", v)
	}
	return nil
}

// ValuesFromCookies builds the nested store a handler sees from parsed
// request cookies. Names and values are percent-decoded, bracket names are
// expanded into nested maps, and the first cookie wins on duplicate names.
// Distinct names sharing a dotted path, such as "list[]" and "list", are
// resolved by values.Unflatten, where the later one wins.
func ValuesFromCookies(cookies []*http.Cookie) *values.Values {
	seen := make(map[string]struct{}, len(cookies))
	pairs := make([]values.Pair, 0, len(cookies))
	for _, c := range cookies {
		name := cookie.Unescape(c.Name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		pairs = append(pairs, values.Decompose(name, cookie.Unescape(c.Value)))
	}
	return values.New(values.Unflatten(pairs))
}

// GetValues retrieves the decrypted incoming values from the context.
//
// Example:
//
//	v, err := cookiemiddleware.GetValues(r.Context())
//	if err != nil {
//	    http.Error(w, "no cookie values", http.StatusInternalServerError)
//	    return
//	}
//	theme := v.String("settings.theme", "light")
func GetValues(ctx context.Context) (*values.Values, error) {
	return core.GetValues(ctx)
}

// GetCookies retrieves the outgoing cookie collection from the context.
//
// Example:
//
//	cookies, err := cookiemiddleware.GetCookies(r.Context())
//	if err != nil {
//	    return
//	}
//	cookies.Add(cookie.Params{Name: "theme", Value: "dark", Lifetime: cookie.Lifetime(3600)})
func GetCookies(ctx context.Context) (*cookie.Cookies, error) {
	return core.GetCookies(ctx)
}

// MustGetCookies retrieves the outgoing collection or panics.
// Use only behind the middleware.
func MustGetCookies(ctx context.Context) *cookie.Cookies {
	c, err := core.GetCookies(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
