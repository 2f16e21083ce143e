package cookiegrpc

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-cookie-middleware/cookie"
)

type noopMetrics struct{}

func (noopMetrics) IncCounter(string, map[string]string) {}
func (noopMetrics) ObserveHistogram(string, float64, map[string]string) {}

func TestOptions_Nil(t *testing.T) {
	testCases := []struct {
		name    string
		opt     Option
		wantErr string
	}{
		{name: "encrypter", opt: WithEncrypter(nil), wantErr: "encrypter cannot be nil"},
		{name: "cookie factory", opt: WithCookieFactory(nil), wantErr: "cookie factory cannot be nil"},
		{name: "logger", opt: WithLogger(nil), wantErr: "logger cannot be nil"},
		{name: "metrics", opt: WithMetrics(nil), wantErr: "metrics cannot be nil"},
		{name: "cookie extractor", opt: WithCookieExtractor(nil), wantErr: "cookie extractor cannot be nil"},
		{name: "error handler", opt: WithErrorHandler(nil), wantErr: "error handler cannot be nil"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := New(testCase.opt)
			assert.EqualError(t, err, testCase.wantErr)
		})
	}
}

func TestOptions_Apply(t *testing.T) {
	factory := cookie.NewFactory(cookie.DefaultPath("/api"))
	extractor := func(context.Context) ([]*http.Cookie, error) { return nil, nil }
	handler := func(err error) error { return err }

	interceptor, err := New(
		WithCookieFactory(factory),
		WithCookieExtractor(extractor),
		WithErrorHandler(handler),
		WithLogger(slog.Default()),
		WithMetrics(noopMetrics{}),
		WithExcludedMethods("/a.B/C", "/a.B/D"),
	)
	require.NoError(t, err)

	assert.Same(t, factory, interceptor.factory)
	assert.NotNil(t, interceptor.cookieExtractor)
	assert.NotNil(t, interceptor.errorHandler)
	assert.NotNil(t, interceptor.logger)
	assert.Equal(t, map[string]bool{"/a.B/C": true, "/a.B/D": true}, interceptor.excludedMethods)
	assert.Len(t, interceptor.coreOpts, 2)
}
