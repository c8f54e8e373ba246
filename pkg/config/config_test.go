package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresBackendURL(t *testing.T) {
	t.Setenv(EnvBackendURL, "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), EnvBackendURL)
}

func TestLoad_RejectsMalformedBackendURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "browserless:3000"},
		{name: "no host", url: "http://"},
		{name: "garbage", url: "://nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBackendURL, tt.url)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://browserless:3000")
	t.Setenv(EnvBackendToken, "")
	t.Setenv(EnvRequestTimeout, "")
	t.Setenv(EnvImplicitWait, "")
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvHealthAddr, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://browserless:3000", cfg.BackendURL)
	assert.False(t, cfg.HasToken())
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultImplicitWait, cfg.ImplicitWait)
	assert.Empty(t, cfg.ListenAddr)
	assert.Equal(t, DefaultHealthAddr, cfg.HealthAddr)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://browserless:3000/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://browserless:3000", cfg.BackendURL)
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv(EnvBackendURL, "https://grid.internal:4444")
	t.Setenv(EnvBackendToken, "secret-token")
	t.Setenv(EnvRequestTimeout, "45s")
	t.Setenv(EnvImplicitWait, "5s")
	t.Setenv(EnvListenAddr, ":9090")
	t.Setenv(EnvHealthAddr, ":9091")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://grid.internal:4444", cfg.BackendURL)
	assert.True(t, cfg.HasToken())
	assert.Equal(t, "secret-token", cfg.BackendToken)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.ImplicitWait)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, ":9091", cfg.HealthAddr)
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://browserless:3000")

	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "not a duration", env: EnvRequestTimeout, value: "soon"},
		{name: "negative", env: EnvRequestTimeout, value: "-5s"},
		{name: "zero implicit wait", env: EnvImplicitWait, value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvRequestTimeout, "")
			t.Setenv(EnvImplicitWait, "")
			t.Setenv(tt.env, tt.value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
