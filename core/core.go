package core

import (
	"errors"
	"time"

	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/encryption"
	"github.com/auth0/go-cookie-middleware/values"
)

// Logger defines an optional logging interface for the Processor.
// *slog.Logger and hclog.Logger satisfy it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives processing counters and timings.
type Metrics interface {
	IncCounter(name string, tags map[string]string)
	ObserveHistogram(name string, value float64, tags map[string]string)
}

// GaugeMetrics is implemented by Metrics that also accept gauges. The
// Processor reports MetricWhitelistSize through it.
type GaugeMetrics interface {
	SetGauge(name string, value float64, tags map[string]string)
}

// Metric names reported by the Processor.
const (
	MetricEncrypted       = "cookies_encrypted_total"
	MetricDecrypted       = "cookies_decrypted_total"
	MetricProcessDuration = "cookies_process_duration_seconds"
	MetricWhitelistSize   = "cookies_whitelist_size"
)

// Processor applies the configured Encrypter to cookie values.
type Processor struct {
	encrypter encryption.Encrypter
	whitelist *Whitelist
	logger    Logger
	metrics   Metrics
}

// Whitelist exempts names from encryption. See Whitelist.Add for how names
// are matched on each side.
func (p *Processor) Whitelist(names ...string) {
	p.whitelist.Add(names...)
	p.reportWhitelist()
}

// Whitelisted returns the whitelist shared by all requests.
func (p *Processor) Whitelisted() *Whitelist {
	return p.whitelist
}

// HasEncrypter reports whether values are transformed at all.
func (p *Processor) HasEncrypter() bool {
	return p.encrypter != nil
}

// ProcessCookies encrypts the value of every outgoing cookie that is not
// empty and whose exact name is not whitelisted. The input collection is not
// modified. Without an encrypter the input is returned as is.
//
// Any encryption failure aborts the whole collection.
func (p *Processor) ProcessCookies(c *cookie.Cookies) (*cookie.Cookies, error) {
	if p.encrypter == nil {
		return c, nil
	}

	defer p.observe("outgoing", time.Now())

	return c.Transform(func(ck cookie.Cookie) (cookie.Cookie, error) {
		if ck.Value() == "" || p.whitelist.HasName(ck.Name()) {
			return ck, nil
		}

		encrypted, err := p.encrypt(ck.Name(), ck.Value())
		if err != nil {
			return ck, err
		}
		return ck.WithValue(encrypted), nil
	})
}

// ProcessValues decrypts values decoded from an incoming request.
func (p *Processor) ProcessValues(v *values.Values) *values.Values {
	if p.encrypter == nil {
		return v
	}

	defer p.observe("incoming", time.Now())

	return p.DecryptValues(v)
}

// EncryptValues encrypts every non-empty string leaf of v whose dotted path
// is not whitelisted and returns a new store with the same shape.
func (p *Processor) EncryptValues(v *values.Values) (*values.Values, error) {
	if p.encrypter == nil {
		return v, nil
	}

	pairs := values.Flatten(v.All())
	out := make([]values.Pair, 0, len(pairs))
	for _, pair := range pairs {
		s, ok := p.transformable(pair)
		if !ok {
			out = append(out, pair)
			continue
		}

		encrypted, err := p.encrypt(pair.Path, s)
		if err != nil {
			return nil, err
		}
		out = append(out, values.Pair{Path: pair.Path, Value: encrypted})
	}

	return v.WithValues(values.Unflatten(out)), nil
}

// DecryptValues decrypts every non-empty string leaf of v whose dotted path
// is not whitelisted and returns a new store with the same shape. Leaves that
// fail to decrypt are dropped, so Has reports false for them.
func (p *Processor) DecryptValues(v *values.Values) *values.Values {
	if p.encrypter == nil {
		return v
	}

	pairs := values.Flatten(v.All())
	out := make([]values.Pair, 0, len(pairs))
	for _, pair := range pairs {
		s, ok := p.transformable(pair)
		if !ok {
			out = append(out, pair)
			continue
		}

		decrypted, err := p.encrypter.Decrypt(s)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("Dropping cookie value that failed to decrypt", "path", pair.Path, "error", err)
			}
			p.count(MetricDecrypted, "failed")
			continue
		}

		p.count(MetricDecrypted, "ok")
		out = append(out, values.Pair{Path: pair.Path, Value: decrypted})
	}

	return v.WithValues(values.Unflatten(out))
}

func (p *Processor) transformable(pair values.Pair) (string, bool) {
	s, ok := pair.Value.(string)
	if !ok || s == "" || p.whitelist.HasPath(pair.Path) {
		return "", false
	}
	return s, true
}

func (p *Processor) encrypt(key, plaintext string) (string, error) {
	encrypted, err := p.encrypter.Encrypt(plaintext)
	if err != nil {
		if !errors.Is(err, encryption.ErrEncrypt) {
			err = &encryption.EncryptError{Details: err}
		}
		if p.logger != nil {
			p.logger.Error("Failed to encrypt cookie value", "key", key, "error", err)
		}
		p.count(MetricEncrypted, "failed")
		return "", NewProcessingError(ErrorCodeEncryptFailed, "failed to encrypt cookie "+key, err)
	}

	p.count(MetricEncrypted, "ok")
	return encrypted, nil
}

// reportWhitelist sets MetricWhitelistSize to the number of distinct names.
func (p *Processor) reportWhitelist() {
	if g, ok := p.metrics.(GaugeMetrics); ok {
		g.SetGauge(MetricWhitelistSize, float64(p.whitelist.Len()), nil)
	}
}

func (p *Processor) count(name, result string) {
	if p.metrics != nil {
		p.metrics.IncCounter(name, map[string]string{"result": result})
	}
}

func (p *Processor) observe(direction string, start time.Time) {
	duration := time.Since(start)
	if p.metrics != nil {
		p.metrics.ObserveHistogram(MetricProcessDuration, duration.Seconds(), map[string]string{"direction": direction})
	}
	if p.logger != nil {
		p.logger.Debug("Processed cookies", "direction", direction, "duration", duration)
	}
}
