package encryption

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for encryption.
var (
	// ErrDecrypt is matched by every error returned from Decrypt when the
	// input is not valid ciphertext for the configured key.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrEncrypt is matched by every error returned from Encrypt.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrInvalidKey is returned by constructors given a key of the wrong size.
	ErrInvalidKey = errors.New("invalid key")
)

// Encrypter encrypts and decrypts cookie values.
// Implementations must be safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// DecryptError wraps a backend failure with ErrDecrypt.
type DecryptError struct {
	Details error
}

// Is allows the error to support equality to ErrDecrypt.
func (e *DecryptError) Is(target error) bool {
	return target == ErrDecrypt
}

func (e *DecryptError) Error() string {
	if e.Details == nil {
		return ErrDecrypt.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDecrypt, e.Details)
}

// Unwrap returns the backend error.
func (e *DecryptError) Unwrap() error {
	return e.Details
}

// EncryptError wraps a backend failure with ErrEncrypt.
type EncryptError struct {
	Details error
}

// Is allows the error to support equality to ErrEncrypt.
func (e *EncryptError) Is(target error) bool {
	return target == ErrEncrypt
}

func (e *EncryptError) Error() string {
	if e.Details == nil {
		return ErrEncrypt.Error()
	}
	return fmt.Sprintf("%s: %s", ErrEncrypt, e.Details)
}

// Unwrap returns the backend error.
func (e *EncryptError) Unwrap() error {
	return e.Details
}

// GenerateKey returns size bytes read from crypto/rand.
func GenerateKey(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidKey)
	}
	key := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}
