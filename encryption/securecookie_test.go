package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecureCookie(t *testing.T) {
	testCases := []struct {
		name     string
		keyPairs [][]byte
		wantErr  bool
	}{
		{name: "single pair", keyPairs: [][]byte{testKey(64), testKey(32)}},
		{name: "two pairs", keyPairs: [][]byte{testKey(64), testKey(32), testKey(32), testKey(16)}},
		{name: "no keys", wantErr: true},
		{name: "missing block key", keyPairs: [][]byte{testKey(64)}, wantErr: true},
		{name: "empty hash key", keyPairs: [][]byte{nil, testKey(32)}, wantErr: true},
		{name: "bad block key", keyPairs: [][]byte{testKey(64), testKey(10)}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSecureCookie(tc.keyPairs...)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSecureCookie_RoundTrip(t *testing.T) {
	enc, err := NewSecureCookie(testKey(64), testKey(32))
	require.NoError(t, err)

	testRoundTrip(t, enc)
}

func TestSecureCookie_KeyRotation(t *testing.T) {
	oldHash, oldBlock := testKey(64), testKey(32)
	newHash, newBlock := testKey(64), testKey(32)
	newHash[0], newBlock[0] = 0xAA, 0xBB

	previous, err := NewSecureCookie(oldHash, oldBlock)
	require.NoError(t, err)
	rotated, err := NewSecureCookie(newHash, newBlock, oldHash, oldBlock)
	require.NoError(t, err)

	ciphertext, err := previous.Encrypt("Foo")
	require.NoError(t, err)

	got, err := rotated.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "Foo", got)
}
