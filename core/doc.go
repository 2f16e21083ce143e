/*
Package core provides the framework-agnostic cookie value pipeline that every
transport adapter shares.

# Architecture

	┌─────────────────────────────────────────────┐
	│         Transport Adapters                  │
	│  (HTTP, gRPC, Gin, Echo)                    │
	└────────────────┬────────────────────────────┘
	                 │ incoming values / outgoing cookies
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Processor (THIS PACKAGE)           │
	│  • flatten, transform, rebuild              │
	│  • whitelist by cookie name and by path     │
	│  • drop leaves that fail to decrypt         │
	└────────────────┬────────────────────────────┘
	                 │
	                 ▼
	┌─────────────────────────────────────────────┐
	│          encryption.Encrypter               │
	└─────────────────────────────────────────────┘

# Basic Usage

	enc, err := encryption.New(key)
	if err != nil {
	    log.Fatal(err)
	}

	p, err := core.New(
	    core.WithEncrypter(enc),
	    core.WithWhitelist("consent", "option[bar]"),
	)
	if err != nil {
	    log.Fatal(err)
	}

	// Incoming: bracket-named cookies rebuilt into a nested store.
	v := p.ProcessValues(incoming)
	v.String("option.foo", "")

	// Outgoing: encrypt everything except whitelisted names.
	out, err := p.ProcessCookies(cookies)

# Whitelist

A whitelisted name is matched as given against outgoing cookie names and in
dotted form against incoming value paths, so "option[bar]" exempts both the
outgoing cookie "option[bar]" and the incoming leaf "option.bar".

# Error Handling

Decryption failures never surface. The affected leaf is dropped and a
warning is logged. Encryption failures abort the collection:

	out, err := p.ProcessCookies(cookies)
	if errors.Is(err, encryption.ErrEncrypt) {
	    // nothing may be sent
	}

	var procErr *core.ProcessingError
	if errors.As(err, &procErr) && procErr.Code == core.ErrorCodeEncryptFailed {
	    // ...
	}

# Context Helpers

Adapters store the request's values and outgoing collection in the context:

	ctx = core.SetValues(ctx, v)
	ctx = core.SetCookies(ctx, cookie.NewCookies(factory))

	v, err := core.GetValues(ctx)
	c, err := core.GetCookies(ctx)
*/
package core
