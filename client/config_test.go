/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/acronis/go-gleif/httpclient"
)

func TestLoadConfigFromViper(t *testing.T) {
	cfgData := bytes.NewBufferString(`
gleif:
  baseURL: https://gleif.example.com/api/v1/
  rateLimit:
    limit: 30
    interval: 30s
  httpClient:
    timeout: 10s
    retries:
      enabled: true
      maxAttempts: 2
    log:
      enabled: true
      mode: failed
`)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(cfgData))

	cfg, err := LoadConfigFromViper(v)
	require.NoError(t, err)
	require.Equal(t, "https://gleif.example.com/api/v1/", cfg.BaseURL)
	require.Equal(t, 30, cfg.RateLimit.Limit)
	require.Equal(t, 30*time.Second, cfg.RateLimit.Interval)
	require.Equal(t, 10*time.Second, cfg.HTTPClient.Timeout)
	require.True(t, cfg.HTTPClient.Retries.Enabled)
	require.Equal(t, 2, cfg.HTTPClient.Retries.MaxAttempts)
	require.Equal(t, httpclient.LoggingModeFailed, cfg.HTTPClient.Log.Mode)
}

func TestLoadConfigFromViperDefaults(t *testing.T) {
	cfg, err := LoadConfigFromViper(viper.New())
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, DefaultRateLimit, cfg.RateLimit.Limit)
	require.Equal(t, DefaultRateInterval, cfg.RateLimit.Interval)
	require.False(t, cfg.HTTPClient.Retries.Enabled)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(cfg *Config)
		errSubstr string
	}{
		{
			name:      "zero rate limit",
			modify:    func(cfg *Config) { cfg.RateLimit.Limit = 0 },
			errSubstr: "rate limit must be positive",
		},
		{
			name:      "negative interval",
			modify:    func(cfg *Config) { cfg.RateLimit.Interval = -time.Second },
			errSubstr: "rate interval must be positive",
		},
		{
			name: "invalid transport config",
			modify: func(cfg *Config) {
				cfg.HTTPClient.Retries.Enabled = true
				cfg.HTTPClient.Retries.Policy = "fibonacci"
			},
			errSubstr: "policy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit.Limit = 10
	cfg.RateLimit.Interval = time.Second

	c, err := NewClientFromConfig(cfg, Opts{})
	require.NoError(t, err)
	require.Equal(t, 10, c.Throttler().RateLimit())
	require.Equal(t, time.Second, c.Throttler().Interval())
	require.Equal(t, DefaultBaseURL, c.BaseURL().String())
}

func TestNewWithOptsRejectsInvalidBaseURL(t *testing.T) {
	cfg := NewConfig()
	cfg.BaseURL = "://not-a-url"
	_, err := New(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse base url")
}
