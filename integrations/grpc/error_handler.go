package cookiegrpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/auth0/go-cookie-middleware/encryption"
)

// ErrorHandler converts processing errors to gRPC status errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps cookie processing errors to gRPC status codes.
// Encryption failures become Internal without exposing the cause; any
// other error, such as a failing custom extractor, becomes InvalidArgument.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	if errors.Is(err, encryption.ErrEncrypt) {
		return status.Error(codes.Internal, "failed to process cookies")
	}

	return status.Error(codes.InvalidArgument, err.Error())
}
