// Package config provides JSON-based configuration loading for the
// fingerprinting engine, with safe defaults for standalone use.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds the tunable parameters an operator sets once at startup and
// then shares read-only across the client and worker packages.
type Config struct {
	// DefaultProfile is the catalog profile name used when a caller does not
	// pick one explicitly (e.g. "chrome_133").
	DefaultProfile string `json:"default_profile"`

	// RequestTimeout is the end-to-end timeout for a single HTTP request,
	// including connection setup, TLS/QUIC handshake, sending the request
	// body, and reading the full response. In JSON it is time.Duration's
	// default encoding, an integer count of nanoseconds (e.g. 30000000000
	// for 30s); strings such as "30s" are rejected.
	RequestTimeout time.Duration `json:"request_timeout"`

	// MaxRedirects bounds how many redirect hops client.HttpClient.Send
	// follows before returning ErrTooManyRedirects.
	MaxRedirects int `json:"max_redirects"`

	// AcceptInvalidCerts disables TLS certificate verification. Only useful
	// against test fixtures or MITM-inspected lab traffic.
	AcceptInvalidCerts bool `json:"accept_invalid_certs"`

	// WarmupWorkers sizes the worker pool used to validate catalog profiles
	// concurrently at startup (see the worker package).
	WarmupWorkers int `json:"warmup_workers"`
}

// LoadConfig reads a JSON file at filename and deserialises it into a Config.
// It returns an error if the file cannot be opened or if the JSON is
// malformed. The returned *Config is ready to use; zero-value fields retain
// Go's zero values, so callers should validate required fields after loading.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename) // #nosec G304 – filename is caller-provided config path
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", filename, err)
	}
	defer f.Close()

	var cfg Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields() // catch typos in config files early
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode %q: %w", filename, err)
	}
	return &cfg, nil
}

// DefaultConfig returns a *Config pre-filled with sensible defaults for
// running the engine against a single target without a config file.
// Callers are free to mutate the returned struct before passing it to other
// components; each call returns a fresh independent copy.
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile:     "chrome_133",
		RequestTimeout:     30 * time.Second,
		MaxRedirects:       10,
		AcceptInvalidCerts: false,
		WarmupWorkers:      8,
	}
}
