package encryption

import (
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwe"
)

// JWE encrypts values as compact JWE tokens using direct encryption with
// A256GCM. Tokens are interoperable with any JOSE library holding the key.
type JWE struct {
	key []byte
}

// NewJWE creates a JWE encrypter. Key must be 32 bytes.
func NewJWE(key []byte) (*JWE, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: A256GCM requires 32 bytes, got %d", ErrInvalidKey, len(key))
	}
	return &JWE{key: append([]byte(nil), key...)}, nil
}

// Encrypt returns plaintext as a compact JWE.
func (e *JWE) Encrypt(plaintext string) (string, error) {
	token, err := jwe.Encrypt(
		[]byte(plaintext),
		jwe.WithKey(jwa.DIRECT, e.key),
		jwe.WithContentEncryption(jwa.A256GCM),
	)
	if err != nil {
		return "", &EncryptError{Details: err}
	}
	return string(token), nil
}

// Decrypt parses and decrypts a compact JWE.
func (e *JWE) Decrypt(ciphertext string) (string, error) {
	plaintext, err := jwe.Decrypt([]byte(ciphertext), jwe.WithKey(jwa.DIRECT, e.key))
	if err != nil {
		return "", &DecryptError{Details: err}
	}
	return string(plaintext), nil
}
