// Package cookiegrpc provides gRPC server interceptors for structured,
// optionally encrypted cookies.
//
// gRPC has no cookies of its own. When a gRPC-Gateway or grpc-web proxy sits
// in front of the server, the HTTP Cookie header arrives as "cookie"
// metadata and Set-Cookie values are sent back as "set-cookie" header
// metadata, which the proxy forwards to the browser.
//
// # Basic Usage
//
//	import (
//	    "log"
//	    "net"
//
//	    cookiegrpc "github.com/auth0/go-cookie-middleware/integrations/grpc"
//	    "github.com/auth0/go-cookie-middleware/encryption"
//	    "google.golang.org/grpc"
//	)
//
//	func main() {
//	    enc, err := encryption.New(key)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    interceptor, err := cookiegrpc.New(
//	        cookiegrpc.WithEncrypter(enc),
//	        cookiegrpc.WithWhitelist("consent"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    server := grpc.NewServer(
//	        grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
//	        grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
//	    )
//
//	    lis, _ := net.Listen("tcp", ":50051")
//	    server.Serve(lis)
//	}
//
// # Reading and Writing Cookies
//
//	func (s *server) GetPrefs(ctx context.Context, req *pb.Request) (*pb.Prefs, error) {
//	    v, err := cookiegrpc.GetValues(ctx)
//	    if err != nil {
//	        return nil, status.Error(codes.Internal, "no cookie values")
//	    }
//
//	    cookiegrpc.MustGetCookies(ctx).Set("prefs[seen]", "1")
//	    return &pb.Prefs{Locale: v.String("prefs.locale", "en")}, nil
//	}
//
// Unary calls send the outgoing cookies when the handler returns
// successfully. Streaming calls send them with the response header, before
// the first message.
//
// # Excluding Methods
//
//	interceptor, err := cookiegrpc.New(
//	    cookiegrpc.WithExcludedMethods(
//	        "/grpc.health.v1.Health/Check",
//	        "/grpc.health.v1.Health/Watch",
//	    ),
//	)
//
// # Error Handling
//
// DefaultErrorHandler maps errors to status codes:
//   - encryption failures: codes.Internal
//   - existing status errors: passed through
//   - anything else: codes.InvalidArgument
package cookiegrpc
