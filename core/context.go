package core

import (
	"context"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/values"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	valuesKey contextKey = iota
	cookiesKey
)

// GetValues retrieves the decrypted incoming values from the context.
//
// Example usage:
//
//	v, err := core.GetValues(r.Context())
//	if err != nil {
//	    return err
//	}
//	theme := v.String("settings.theme", "light")
func GetValues(ctx context.Context) (*values.Values, error) {
	v, ok := ctx.Value(valuesKey).(*values.Values)
	if !ok || v == nil {
		return nil, ErrValuesNotFound
	}
	return v, nil
}

// SetValues stores incoming values in the context.
func SetValues(ctx context.Context, v *values.Values) context.Context {
	return context.WithValue(ctx, valuesKey, v)
}

// HasValues checks if values exist in the context without retrieving them.
func HasValues(ctx context.Context) bool {
	return ctx.Value(valuesKey) != nil
}

// GetCookies retrieves the outgoing cookie collection from the context.
// Handlers add to it; the adapter writes it as Set-Cookie headers.
func GetCookies(ctx context.Context) (*cookie.Cookies, error) {
	c, ok := ctx.Value(cookiesKey).(*cookie.Cookies)
	if !ok || c == nil {
		return nil, ErrCookiesNotFound
	}
	return c, nil
}

// SetCookies stores the outgoing cookie collection in the context.
func SetCookies(ctx context.Context, c *cookie.Cookies) context.Context {
	return context.WithValue(ctx, cookiesKey, c)
}

// HasCookies checks if an outgoing collection exists in the context.
func HasCookies(ctx context.Context) bool {
	return ctx.Value(cookiesKey) != nil
}
