package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
)

// CipherType identifies an AEAD algorithm.
type CipherType string

const (
	CipherAESGCM   CipherType = "aes-gcm"
	CipherChaCha20 CipherType = "chacha20-poly1305"
)

var encoding = base64.RawURLEncoding

// AEAD encrypts values with an authenticated cipher. The output is the
// random nonce followed by the sealed value, base64url encoded without
// padding so it can be used as a cookie value as is.
type AEAD struct {
	aead       cipher.AEAD
	cipherType CipherType
}

// New creates an AEAD encrypter, choosing AES-GCM where the platform
// accelerates AES and ChaCha20-Poly1305 otherwise. ChaCha20 requires a
// 32 byte key.
func New(key []byte) (*AEAD, error) {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return NewAESGCM(key)
	default:
		return NewChaCha20(key)
	}
}

// NewWithType creates an AEAD encrypter of the given type.
func NewWithType(key []byte, cipherType CipherType) (*AEAD, error) {
	switch cipherType {
	case CipherAESGCM:
		return NewAESGCM(key)
	case CipherChaCha20:
		return NewChaCha20(key)
	default:
		return nil, fmt.Errorf("unknown cipher type: %q", cipherType)
	}
}

// NewAESGCM creates an AES-GCM encrypter. Key must be 16, 24 or 32 bytes.
func NewAESGCM(key []byte) (*AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &AEAD{aead: aead, cipherType: CipherAESGCM}, nil
}

// NewChaCha20 creates a ChaCha20-Poly1305 encrypter. Key must be 32 bytes.
func NewChaCha20(key []byte) (*AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: ChaCha20-Poly1305 requires %d bytes", ErrInvalidKey, chacha20poly1305.KeySize)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	return &AEAD{aead: aead, cipherType: CipherChaCha20}, nil
}

// Type returns the cipher type.
func (c *AEAD) Type() CipherType {
	return c.cipherType
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *AEAD) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", &EncryptError{Details: err}
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return encoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (c *AEAD) Decrypt(ciphertext string) (string, error) {
	raw, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return "", &DecryptError{Details: err}
	}

	if len(raw) < c.aead.NonceSize()+c.aead.Overhead() {
		return "", &DecryptError{Details: errors.New("ciphertext too short")}
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", &DecryptError{Details: err}
	}

	return string(plaintext), nil
}
