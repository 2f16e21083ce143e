package encryption

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptError(t *testing.T) {
	cause := errors.New("bad tag")
	err := error(&DecryptError{Details: cause})

	assert.ErrorIs(t, err, ErrDecrypt)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEncrypt)
	assert.Equal(t, "decrypt failed: bad tag", err.Error())
	assert.Equal(t, "decrypt failed", (&DecryptError{}).Error())
}

func TestEncryptError(t *testing.T) {
	cause := errors.New("no entropy")
	err := error(&EncryptError{Details: cause})

	assert.ErrorIs(t, err, ErrEncrypt)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDecrypt)
	assert.Equal(t, "encrypt failed: no entropy", err.Error())
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey(32)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	other, err := GenerateKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = GenerateKey(0)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

// testRoundTrip checks the contract every backend must honor.
func testRoundTrip(t *testing.T, enc Encrypter) {
	t.Helper()

	for _, plaintext := range []string{"Foo", "Meta Bar Zoo", "ünïcödé ✓", "a;b=c d"} {
		ciphertext, err := enc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)
		assert.NotContains(t, ciphertext, ";")
		assert.NotContains(t, ciphertext, " ")

		got, err := enc.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}

	for _, invalid := range []string{"", "Foo", "not valid ciphertext", "AAAA"} {
		_, err := enc.Decrypt(invalid)
		assert.ErrorIs(t, err, ErrDecrypt, "input %q", invalid)
	}
}
