package cookiemiddleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-cookie-middleware/cookie"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m, err := New()
		require.NoError(t, err)

		assert.NotNil(t, m.errorHandler)
		assert.NotNil(t, m.factory)
		assert.NotNil(t, m.cookieExtractor)
		assert.IsType(t, &NoopTracer{}, m.tracer)
		assert.IsType(t, &NoopMetrics{}, m.metrics)
		assert.False(t, m.Processor().HasEncrypter())
	})

	t.Run("all options", func(t *testing.T) {
		factory := cookie.NewFactory()
		m, err := New(
			WithEncrypter(testEncrypter(t)),
			WithWhitelist("foo"),
			WithWhitelist("option[bar]"),
			WithErrorHandler(DefaultErrorHandler),
			WithCookieFactory(factory),
			WithExclusionUrls([]string{"/health"}),
			WithLogger(slog.Default()),
			WithTracer(&NoopTracer{}),
			WithMetrics(&NoopMetrics{}),
		)
		require.NoError(t, err)

		assert.True(t, m.Processor().HasEncrypter())
		assert.Equal(t, []string{"foo", "option[bar]"}, m.Processor().Whitelisted().Names())
		assert.Same(t, factory, m.Factory())
		assert.True(t, m.exclusionURLHandler(httptest.NewRequest(http.MethodGet, "/health", nil)))
		assert.NotNil(t, m.logger)
	})
}

func TestOptionErrors(t *testing.T) {
	testCases := []struct {
		name    string
		option  Option
		wantErr error
	}{
		{name: "nil encrypter", option: WithEncrypter(nil), wantErr: ErrEncrypterNil},
		{name: "nil error handler", option: WithErrorHandler(nil), wantErr: ErrErrorHandlerNil},
		{name: "nil cookie factory", option: WithCookieFactory(nil), wantErr: ErrCookieFactoryNil},
		{name: "nil cookie extractor", option: WithCookieExtractor(nil), wantErr: ErrCookieExtractorNil},
		{name: "empty exclusion urls", option: WithExclusionUrls(nil), wantErr: ErrExclusionUrlsEmpty},
		{name: "nil logger", option: WithLogger(nil), wantErr: ErrLoggerNil},
		{name: "nil tracer", option: WithTracer(nil), wantErr: ErrTracerNil},
		{name: "nil metrics", option: WithMetrics(nil), wantErr: ErrMetricsNil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.option)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), "invalid option")
			assert.Nil(t, m)
		})
	}
}
