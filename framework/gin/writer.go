package cookiegin

import (
	"github.com/gin-gonic/gin"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
)

// ginWriter writes the outgoing cookies when the response header is
// committed. gin.ResponseWriter.WriteHeader only records the status, so the
// cookies are written on the first body write, WriteHeaderNow or Flush.
type ginWriter struct {
	gin.ResponseWriter
	m      *cookiemiddleware.CookieMiddleware
	c      *gin.Context
	config *ginMiddlewareConfig

	flushed bool
	failed  bool
}

func (w *ginWriter) flush() bool {
	if w.flushed {
		return !w.failed
	}
	w.flushed = true

	if err := w.m.WriteCookies(w.c.Request.Context(), w.ResponseWriter.Header()); err != nil {
		w.failed = true
		w.c.Writer = w.ResponseWriter
		w.config.errorHandler(w.c, err)
	}
	return !w.failed
}

func (w *ginWriter) WriteHeaderNow() {
	if w.flush() {
		w.ResponseWriter.WriteHeaderNow()
	}
}

func (w *ginWriter) Write(b []byte) (int, error) {
	if !w.flush() {
		return 0, cookiemiddleware.ErrResponseReplaced
	}
	return w.ResponseWriter.Write(b)
}

func (w *ginWriter) WriteString(s string) (int, error) {
	if !w.flush() {
		return 0, cookiemiddleware.ErrResponseReplaced
	}
	return w.ResponseWriter.WriteString(s)
}

func (w *ginWriter) Flush() {
	if w.flush() {
		w.ResponseWriter.Flush()
	}
}
