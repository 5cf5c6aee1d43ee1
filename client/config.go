/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/acronis/go-gleif/httpclient"
	"github.com/acronis/go-gleif/throttle"
)

// Default client-level throttling matches the quota the public API enforces
// for unauthenticated callers.
const (
	DefaultRateLimit    = 60
	DefaultRateInterval = time.Minute
)

// ConfigKey is the default viper key the client configuration is read from.
const ConfigKey = "gleif"

// RateLimitConfig describes the fixed-window request quota.
type RateLimitConfig struct {
	// Limit is the maximum number of requests per window.
	Limit int `mapstructure:"limit"`

	// Interval is the window length.
	Interval time.Duration `mapstructure:"interval"`
}

// Config holds the configuration of a Client.
// All fields map 1:1 to configuration keys and may be decoded with mapstructure.
type Config struct {
	// BaseURL is the API endpoint. DefaultBaseURL is used when empty.
	BaseURL string `mapstructure:"baseURL"`

	// RateLimit is the client-level fixed-window quota.
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`

	// HTTPClient configures the underlying transport chain.
	HTTPClient httpclient.Config `mapstructure:"httpClient"`
}

// NewConfig returns a Config with defaults filled in.
func NewConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		RateLimit: RateLimitConfig{
			Limit:    DefaultRateLimit,
			Interval: DefaultRateInterval,
		},
		HTTPClient: *httpclient.NewConfig(),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit.Limit)
	}
	if c.RateLimit.Interval <= 0 {
		return fmt.Errorf("rate interval must be positive, got %s", c.RateLimit.Interval)
	}
	return c.HTTPClient.Validate()
}

// LoadConfigFromViper reads the client configuration from the ConfigKey
// section of the given viper instance. Missing keys keep their defaults.
func LoadConfigFromViper(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()
	if !v.IsSet(ConfigKey) {
		return cfg, nil
	}
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.UnmarshalKey(ConfigKey, cfg, viper.DecodeHook(decodeHook)); err != nil {
		return nil, fmt.Errorf("unmarshal %q configuration section: %w", ConfigKey, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewClientFromConfig builds the full stack from a single configuration:
// the transport chain from Config.HTTPClient and the fixed-window throttler
// from Config.RateLimit.
func NewClientFromConfig(cfg *Config, opts Opts) (*Client, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.HTTPClient == nil {
		httpClient, err := httpclient.NewWithOpts(&cfg.HTTPClient, httpclient.Opts{
			UserAgent: opts.UserAgent,
			Logger:    opts.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create http client: %w", err)
		}
		opts.HTTPClient = httpClient
	}
	if opts.Throttler == nil {
		throttler, err := throttle.New(cfg.RateLimit.Limit, cfg.RateLimit.Interval)
		if err != nil {
			return nil, fmt.Errorf("create throttler: %w", err)
		}
		opts.Throttler = throttler
	}
	return NewWithOpts(cfg, opts)
}
