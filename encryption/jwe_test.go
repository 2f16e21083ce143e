package encryption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWE(t *testing.T) {
	_, err := NewJWE(testKey(32))
	assert.NoError(t, err)

	_, err = NewJWE(testKey(16))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestJWE_RoundTrip(t *testing.T) {
	enc, err := NewJWE(testKey(32))
	require.NoError(t, err)

	testRoundTrip(t, enc)
}

func TestJWE_CompactSerialization(t *testing.T) {
	enc, err := NewJWE(testKey(32))
	require.NoError(t, err)

	token, err := enc.Encrypt("Foo")
	require.NoError(t, err)

	// header.encrypted_key.iv.ciphertext.tag, with an empty key for "dir".
	parts := strings.Split(token, ".")
	require.Len(t, parts, 5)
	assert.Empty(t, parts[1])
}
