package cookiegrpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/auth0/go-cookie-middleware/core"
	"github.com/auth0/go-cookie-middleware/encryption"
)

func TestDefaultErrorHandler(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "encryption failure",
			err:         core.NewProcessingError(core.ErrorCodeEncryptFailed, "failed to encrypt cookie", &encryption.EncryptError{Details: errors.New("boom")}),
			wantCode:    codes.Internal,
			wantMessage: "failed to process cookies",
		},
		{
			name:        "status error passes through",
			err:         status.Error(codes.Unavailable, "try later"),
			wantCode:    codes.Unavailable,
			wantMessage: "try later",
		},
		{
			name:        "other error",
			err:         errors.New("bad cookie metadata"),
			wantCode:    codes.InvalidArgument,
			wantMessage: "bad cookie metadata",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			st, ok := status.FromError(DefaultErrorHandler(testCase.err))
			assert.True(t, ok)
			assert.Equal(t, testCase.wantCode, st.Code())
			assert.Equal(t, testCase.wantMessage, st.Message())
		})
	}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, DefaultErrorHandler(nil))
	})
}
