package cookiegrpc

import (
	"context"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/core"
	"github.com/auth0/go-cookie-middleware/values"
)

// GetValues retrieves the decrypted incoming values from the context.
//
// Example:
//
//	v, err := cookiegrpc.GetValues(ctx)
//	if err != nil {
//	    return nil, status.Error(codes.Internal, "no cookie values")
//	}
//	locale := v.String("prefs.locale", "en")
func GetValues(ctx context.Context) (*values.Values, error) {
	return core.GetValues(ctx)
}

// GetCookies retrieves the outgoing collection from the context.
func GetCookies(ctx context.Context) (*cookie.Cookies, error) {
	return core.GetCookies(ctx)
}

// MustGetCookies retrieves the outgoing collection or panics.
// Use only when you are certain the interceptor has run.
//
// Example:
//
//	cookiegrpc.MustGetCookies(ctx).Set("session_hint", "1")
func MustGetCookies(ctx context.Context) *cookie.Cookies {
	c, err := core.GetCookies(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
