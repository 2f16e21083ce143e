package core

import (
	"errors"

	"github.com/auth0/go-cookie-middleware/encryption"
)

// Option is a function that configures the Processor.
// Options return errors to enable validation during construction.
type Option func(*Processor) error

// New creates a Processor with the provided options.
//
// Without WithEncrypter every operation is the identity function.
//
// Example:
//
//	enc, _ := encryption.New(key)
//	p, err := core.New(
//	    core.WithEncrypter(enc),
//	    core.WithWhitelist("consent"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		whitelist: NewWhitelist(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	p.reportWhitelist()
	return p, nil
}

// WithEncrypter sets the Encrypter applied to cookie values.
func WithEncrypter(encrypter encryption.Encrypter) Option {
	return func(p *Processor) error {
		if encrypter == nil {
			return errors.New("encrypter cannot be nil")
		}
		p.encrypter = encrypter
		return nil
	}
}

// WithWhitelist exempts cookie names from encryption. Names are given in
// cookie form, e.g. "option[bar]".
func WithWhitelist(names ...string) Option {
	return func(p *Processor) error {
		p.whitelist.Add(names...)
		return nil
	}
}

// WithLogger sets an optional logger for the Processor.
//
// Decryption failures are logged at warn level with the leaf path only,
// never the value.
func WithLogger(logger Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithMetrics sets an optional metrics sink for the Processor.
func WithMetrics(metrics Metrics) Option {
	return func(p *Processor) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		p.metrics = metrics
		return nil
	}
}
