package cookiemiddleware

import (
	"net/http"
)

// ErrorHandler is called when the outgoing cookie collection cannot be
// encrypted. At that point no Set-Cookie header has been written and the
// wrapped handler's response is discarded, so the handler is responsible for
// the whole response. err matches encryption.ErrEncrypt and
// core.ErrProcessing.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler is the default error handler implementation for the
// CookieMiddleware. If an error handler is not provided via the
// WithErrorHandler option this will be used.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"message":"Something went wrong while processing cookies."}`))
}
