package client

import (
	"time"

	"github.com/firasghr/browserprint/catalog"
	"github.com/firasghr/browserprint/headers"
	"github.com/firasghr/browserprint/metrics"
)

// Config holds the options §6 recognizes for HttpClient construction.
type Config struct {
	Profile       catalog.Profile // required for fingerprint behavior
	Platform      headers.Platform
	UserAgent     string   // override; defaults to the profile's rendered template
	PreferHTTP3   *bool    // nil => default true when the profile supports it
	ALPNProtocols []string // caller override; defaults to the profile's own ALPN list

	TimeoutTotal     time.Duration
	TimeoutConnect   time.Duration
	TimeoutTLS       time.Duration
	TimeoutFirstByte time.Duration

	MaxRedirects       int // default 10
	AcceptInvalidCerts bool

	Pool Pool // optional; nil means the engine dials its own connections

	Metrics *metrics.Metrics // optional; nil disables counter updates
}

// withDefaults fills zero-value fields with §6's documented defaults.
func (c Config) withDefaults() Config {
	if c.MaxRedirects == 0 {
		c.MaxRedirects = 10
	}
	if c.TimeoutTotal == 0 {
		c.TimeoutTotal = 30 * time.Second
	}
	if c.TimeoutConnect == 0 {
		c.TimeoutConnect = 10 * time.Second
	}
	if c.TimeoutTLS == 0 {
		c.TimeoutTLS = 10 * time.Second
	}
	if c.TimeoutFirstByte == 0 {
		c.TimeoutFirstByte = 15 * time.Second
	}
	if len(c.ALPNProtocols) == 0 {
		c.ALPNProtocols = c.Profile.Spec.ALPN()
	}
	if c.Platform.OS == "" {
		c.Platform = headers.DefaultPlatform()
	}
	return c
}

func (c Config) preferHTTP3() bool {
	if c.PreferHTTP3 != nil {
		return *c.PreferHTTP3
	}
	return supportsHTTP3(c.Profile)
}

func supportsHTTP3(p catalog.Profile) bool {
	return p.SupportsHTTP3
}
