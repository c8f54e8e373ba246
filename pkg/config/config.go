// Package config loads the server configuration from the environment.
// Configuration is read once at startup and immutable afterwards.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvBackendURL     = "BROWSERLESS_URL"
	EnvBackendToken   = "BROWSERLESS_TOKEN"
	EnvRequestTimeout = "BROWSERMCP_REQUEST_TIMEOUT"
	EnvImplicitWait   = "BROWSERMCP_IMPLICIT_WAIT"
	EnvListenAddr     = "BROWSERMCP_LISTEN_ADDR"
	EnvHealthAddr     = "BROWSERMCP_HEALTH_ADDR"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultImplicitWait   = 10 * time.Second
	DefaultHealthAddr     = ":8080"
)

// Config holds the immutable server configuration.
type Config struct {
	// BackendURL is the base URL of the remote browserless backend (required).
	BackendURL string

	// BackendToken is the optional bearer credential for the backend.
	BackendToken string

	// RequestTimeout is the hard upper bound on a single tool call.
	RequestTimeout time.Duration

	// ImplicitWait is the element-lookup wait applied to new sessions.
	ImplicitWait time.Duration

	// ListenAddr, when non-empty, enables the streamable HTTP transport
	// instead of stdio.
	ListenAddr string

	// HealthAddr is the address of the liveness endpoint.
	HealthAddr string
}

// Load reads the configuration from the environment. It fails fast when the
// required backend URL is missing or malformed.
func Load() (*Config, error) {
	backendURL := strings.TrimRight(strings.TrimSpace(os.Getenv(EnvBackendURL)), "/")
	if backendURL == "" {
		return nil, fmt.Errorf("%s environment variable is required (example: %s=http://browserless:3000)", EnvBackendURL, EnvBackendURL)
	}

	parsed, err := url.Parse(backendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%s must be a valid absolute URL, got %q", EnvBackendURL, backendURL)
	}

	requestTimeout, err := durationFromEnv(EnvRequestTimeout, DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	implicitWait, err := durationFromEnv(EnvImplicitWait, DefaultImplicitWait)
	if err != nil {
		return nil, err
	}

	healthAddr := os.Getenv(EnvHealthAddr)
	if healthAddr == "" {
		healthAddr = DefaultHealthAddr
	}

	return &Config{
		BackendURL:     backendURL,
		BackendToken:   os.Getenv(EnvBackendToken),
		RequestTimeout: requestTimeout,
		ImplicitWait:   implicitWait,
		ListenAddr:     os.Getenv(EnvListenAddr),
		HealthAddr:     healthAddr,
	}, nil
}

// durationFromEnv parses a duration variable, falling back to def when unset.
func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s or 2m, got %q", name, raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", name, raw)
	}
	return d, nil
}

// HasToken reports whether a backend credential is configured.
func (c *Config) HasToken() bool {
	return c.BackendToken != ""
}
