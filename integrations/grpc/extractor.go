package cookiegrpc

import (
	"context"
	"net/http"

	"google.golang.org/grpc/metadata"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
)

// CookieExtractor extracts request cookies from the call context.
type CookieExtractor func(ctx context.Context) ([]*http.Cookie, error)

// MetadataCookieExtractor reads cookies from the "cookie" metadata key, which
// gRPC-Gateway and grpc-web proxies populate from the HTTP Cookie header.
// Every entry may hold several "name=value" pairs separated by ";". Pairs
// that are not valid cookies are skipped.
func MetadataCookieExtractor(ctx context.Context) ([]*http.Cookie, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, nil // No metadata, no cookies (not an error)
	}
	return cookiemiddleware.ParseCookieLines(md.Get("cookie")), nil
}
