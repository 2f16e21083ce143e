// Package encryption provides the encrypter capability used to protect
// cookie values, together with a few ready-made backends.
//
// An Encrypter turns a plaintext string into a cookie-safe ciphertext string
// and back. Decrypt must report invalid, corrupted or foreign ciphertext with
// an error matching ErrDecrypt; callers treat that as "value absent" rather
// than as a request failure.
//
// Backends:
//   - AEAD: AES-GCM or ChaCha20-Poly1305 with a random nonce (see New).
//   - JWE: compact JWE using direct encryption with A256GCM (see NewJWE).
//   - SecureCookie: gorilla/securecookie codecs with key rotation (see NewSecureCookie).
package encryption
