/*
Package config loads middleware settings from a YAML file, COOKIES_*
environment variables and in-memory overrides, in increasing order of
precedence.

	encryption:
	  cipher: aes-gcm          # none, aes-gcm, chacha20-poly1305, jwe, securecookie
	  key: <base64 32 bytes>   # aes-gcm, chacha20-poly1305, jwe
	  keys: [<hash>, <block>]  # securecookie key pairs, newest first
	cookie:
	  path: /
	  domain: example.com
	  secure: true
	  samesite: Strict
	whitelist: [consent, "option[bar]"]
	exclude: [/healthz]

Environment variables map underscores to nesting, so
COOKIES_ENCRYPTION_CIPHER sets encryption.cipher. List values may be given
comma separated: COOKIES_WHITELIST=consent,theme.

	cfg, err := config.Load(config.WithConfigFile("cookies.yaml"))
	if err != nil {
	    log.Fatal(err)
	}
	opts, err := cfg.Options()
	if err != nil {
	    log.Fatal(err)
	}
	middleware, err := cookiemiddleware.New(opts...)
*/
package config
