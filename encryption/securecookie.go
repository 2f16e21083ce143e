package encryption

import (
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
)

// secureCookieName is bound into every MAC. Values are not tied to a cookie
// name because the encrypter only sees the value.
const secureCookieName = "cookie"

// SecureCookie encrypts and authenticates values with gorilla/securecookie.
// Several key pairs may be given; the first encodes, all are tried on decode,
// which allows key rotation.
type SecureCookie struct {
	codecs []securecookie.Codec
}

// NewSecureCookie creates a SecureCookie from hash/block key pairs, in the
// order accepted by securecookie.CodecsFromPairs. Each hash key must be
// non-empty and each block key 16, 24 or 32 bytes.
func NewSecureCookie(keyPairs ...[]byte) (*SecureCookie, error) {
	if len(keyPairs) == 0 {
		return nil, fmt.Errorf("%w: at least one hash key is required", ErrInvalidKey)
	}

	var codecs []securecookie.Codec
	for i := 0; i < len(keyPairs); i += 2 {
		hashKey := keyPairs[i]
		if len(hashKey) == 0 {
			return nil, fmt.Errorf("%w: hash key %d is empty", ErrInvalidKey, i/2)
		}

		var blockKey []byte
		if i+1 < len(keyPairs) {
			blockKey = keyPairs[i+1]
		}
		switch len(blockKey) {
		case 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: block key %d must be 16, 24 or 32 bytes", ErrInvalidKey, i/2)
		}

		codec := securecookie.New(hashKey, blockKey).
			MaxAge(0).
			SetSerializer(securecookie.NopEncoder{})
		codecs = append(codecs, codec)
	}

	return &SecureCookie{codecs: codecs}, nil
}

// Encrypt encodes plaintext with the first key pair.
func (s *SecureCookie) Encrypt(plaintext string) (string, error) {
	encoded, err := securecookie.EncodeMulti(secureCookieName, []byte(plaintext), s.codecs...)
	if err != nil {
		return "", &EncryptError{Details: err}
	}
	return encoded, nil
}

// Decrypt decodes a value produced by Encrypt with any of the key pairs.
func (s *SecureCookie) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", &DecryptError{Details: errors.New("empty value")}
	}

	var plaintext []byte
	if err := securecookie.DecodeMulti(secureCookieName, ciphertext, &plaintext, s.codecs...); err != nil {
		return "", &DecryptError{Details: err}
	}
	return string(plaintext), nil
}
