package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/encryption"
)

// Cipher names accepted in Encryption.Cipher.
const (
	CipherNone         = "none"
	CipherAESGCM       = string(encryption.CipherAESGCM)
	CipherChaCha20     = string(encryption.CipherChaCha20)
	CipherJWE          = "jwe"
	CipherSecureCookie = "securecookie"
)

var (
	// ErrUnknownCipher is returned for an unsupported Encryption.Cipher.
	ErrUnknownCipher = errors.New("unknown cipher")
	// ErrMissingKey is returned when a cipher is configured without keys.
	ErrMissingKey = errors.New("encryption key is required")
)

// Config is the file and environment representation of the middleware
// settings.
type Config struct {
	Encryption Encryption `koanf:"encryption"`
	Cookie     Cookie     `koanf:"cookie"`
	// Whitelist lists cookie names that are never encrypted.
	Whitelist []string `koanf:"whitelist"`
	// Exclude lists URLs or paths that bypass cookie processing.
	Exclude []string `koanf:"exclude"`
}

// Encryption selects the backend for cookie values.
type Encryption struct {
	// Cipher is one of "none", "aes-gcm", "chacha20-poly1305", "jwe" or
	// "securecookie".
	Cipher string `koanf:"cipher"`
	// Key is the base64 encoded key for the AEAD and JWE ciphers.
	Key string `koanf:"key"`
	// Keys are base64 encoded hash/block key pairs for securecookie, newest
	// first.
	Keys []string `koanf:"keys"`
}

// Cookie holds the attributes applied to outgoing cookies.
type Cookie struct {
	Path     string `koanf:"path"`
	Domain   string `koanf:"domain"`
	Secure   *bool  `koanf:"secure"`
	SameSite string `koanf:"samesite"`
}

// Default returns the configuration used for unset fields.
func Default() Config {
	secure := true
	return Config{
		Encryption: Encryption{Cipher: CipherNone},
		Cookie: Cookie{
			Path:     "/",
			Secure:   &secure,
			SameSite: cookie.SameSiteLax.String(),
		},
	}
}

// applyDefaults fills every zero field of c from Default.
func (c *Config) applyDefaults() error {
	if err := mergo.Merge(c, Default()); err != nil {
		return fmt.Errorf("merge defaults: %w", err)
	}
	return nil
}

// Validate checks that the encryption settings can build an Encrypter.
func (c *Config) Validate() error {
	_, err := c.Encrypter()
	return err
}

// Encrypter builds the configured backend. It returns nil without error
// when encryption is disabled.
func (c *Config) Encrypter() (encryption.Encrypter, error) {
	cipher := strings.ToLower(strings.TrimSpace(c.Encryption.Cipher))

	switch cipher {
	case "", CipherNone:
		return nil, nil
	case CipherAESGCM, CipherChaCha20, CipherJWE:
		key, err := decodeKey(c.Encryption.Key)
		if err != nil {
			return nil, err
		}
		if cipher == CipherJWE {
			return newEncrypter(encryption.NewJWE(key))
		}
		return newEncrypter(encryption.NewWithType(key, encryption.CipherType(cipher)))
	case CipherSecureCookie:
		if len(c.Encryption.Keys) == 0 {
			return nil, fmt.Errorf("%s: %w", cipher, ErrMissingKey)
		}
		pairs := make([][]byte, 0, len(c.Encryption.Keys))
		for _, k := range c.Encryption.Keys {
			key, err := decodeKey(k)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, key)
		}
		return newEncrypter(encryption.NewSecureCookie(pairs...))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, c.Encryption.Cipher)
	}
}

// newEncrypter avoids returning a typed nil Encrypter on error.
func newEncrypter[E encryption.Encrypter](enc E, err error) (encryption.Encrypter, error) {
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func decodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrMissingKey
	}
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	return key, nil
}

// Factory returns a cookie factory with the configured attributes.
func (c *Config) Factory() *cookie.Factory {
	opts := []cookie.FactoryOption{
		cookie.DefaultDomain(c.Cookie.Domain),
	}
	if c.Cookie.Path != "" {
		opts = append(opts, cookie.DefaultPath(c.Cookie.Path))
	}
	if c.Cookie.Secure != nil {
		opts = append(opts, cookie.DefaultSecure(*c.Cookie.Secure))
	}
	if c.Cookie.SameSite != "" {
		opts = append(opts, cookie.DefaultSameSite(c.Cookie.SameSite))
	}
	return cookie.NewFactory(opts...)
}

// Options returns the middleware options for c. Further options, such as a
// logger, can be appended by the caller.
//
// Example:
//
//	cfg, err := config.Load(config.WithConfigFile("cookies.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts, err := cfg.Options()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	middleware, err := cookiemiddleware.New(append(opts, cookiemiddleware.WithLogger(logger))...)
func (c *Config) Options() ([]cookiemiddleware.Option, error) {
	enc, err := c.Encrypter()
	if err != nil {
		return nil, err
	}

	opts := []cookiemiddleware.Option{
		cookiemiddleware.WithCookieFactory(c.Factory()),
	}
	if enc != nil {
		opts = append(opts, cookiemiddleware.WithEncrypter(enc))
	}
	if len(c.Whitelist) > 0 {
		opts = append(opts, cookiemiddleware.WithWhitelist(c.Whitelist...))
	}
	if len(c.Exclude) > 0 {
		opts = append(opts, cookiemiddleware.WithExclusionUrls(c.Exclude))
	}
	return opts, nil
}
