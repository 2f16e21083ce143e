package cookiemiddleware

import (
	"errors"
	"net/http"
)

// ErrResponseReplaced is returned from writes after the error handler has
// replaced the response.
var ErrResponseReplaced = errors.New("response replaced by cookie error handler")

// cookieWriter writes the outgoing cookies as soon as the wrapped handler
// commits the response header.
type cookieWriter struct {
	http.ResponseWriter
	m *CookieMiddleware
	r *http.Request

	flushed bool
	failed  bool
}

// flush writes the Set-Cookie headers once. It reports false when encryption
// failed and the error handler produced the response instead.
func (w *cookieWriter) flush() bool {
	if !w.flushed {
		w.flushed = true
		if err := w.m.WriteCookies(w.r.Context(), w.ResponseWriter.Header()); err != nil {
			w.failed = true
			w.m.errorHandler(w.ResponseWriter, w.r, err)
		}
	}
	return !w.failed
}

func (w *cookieWriter) WriteHeader(code int) {
	if w.flush() {
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	if !w.flush() {
		return 0, ErrResponseReplaced
	}
	return w.ResponseWriter.Write(b)
}

// Flush implements http.Flusher.
func (w *cookieWriter) Flush() {
	if !w.flush() {
		return
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *cookieWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
