/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultTimeout is a default timeout for the whole request including retries.
	DefaultTimeout = 30 * time.Second

	// RetryPolicyExponential is a policy name for exponential retries.
	RetryPolicyExponential = "exponential"

	// RetryPolicyConstant is a policy name for constant retries.
	RetryPolicyConstant = "constant"
)

// BackoffPolicy produces a fresh backoff.BackOff for each request.
// A single backoff.BackOff is stateful and cannot be shared between requests.
type BackoffPolicy interface {
	NewBackOff() backoff.BackOff
}

// BackoffPolicyFunc is an adapter to allow the use of ordinary functions as BackoffPolicy.
type BackoffPolicyFunc func() backoff.BackOff

// NewBackOff calls the wrapped function.
func (f BackoffPolicyFunc) NewBackOff() backoff.BackOff {
	return f()
}

// Config holds configuration for building an http.Client transport chain.
// All fields map 1:1 to configuration keys and may be decoded with mapstructure.
type Config struct {
	// Timeout limits the whole request including retries. Zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`

	// UserAgent is set in outgoing requests that carry no User-Agent header.
	UserAgent string `mapstructure:"userAgent"`

	// Retries configures the retry policy. Disabled by default.
	Retries RetriesConfig `mapstructure:"retries"`

	// RateLimits configures client-side smoothing of outgoing requests.
	RateLimits RateLimitConfig `mapstructure:"rateLimits"`

	// Log configures request logging.
	Log LogConfig `mapstructure:"log"`

	// Metrics enables request duration observations.
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{Timeout: DefaultTimeout}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if err := c.Retries.validate(); err != nil {
		return err
	}
	return c.RateLimits.validate()
}

// RetriesConfig configures the retryable round tripper.
type RetriesConfig struct {
	// Enabled turns retries on.
	Enabled bool `mapstructure:"enabled"`

	// MaxAttempts limits the number of retry attempts.
	// DefaultMaxRetryAttempts is used when zero.
	MaxAttempts int `mapstructure:"maxAttempts"`

	// Policy selects the backoff strategy: exponential (default) or constant.
	Policy string `mapstructure:"policy"`

	// ExponentialBackoffInitialInterval is the first delay of the exponential policy.
	ExponentialBackoffInitialInterval time.Duration `mapstructure:"exponentialBackoffInitialInterval"`

	// ExponentialBackoffMultiplier is the delay growth factor of the exponential policy.
	ExponentialBackoffMultiplier float64 `mapstructure:"exponentialBackoffMultiplier"`

	// ConstantBackoffInterval is the fixed delay of the constant policy.
	ConstantBackoffInterval time.Duration `mapstructure:"constantBackoffInterval"`
}

func (c *RetriesConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.MaxAttempts < 0 && c.MaxAttempts != UnlimitedRetryAttempts {
		return errors.New("max retry attempts must not be negative")
	}
	switch c.Policy {
	case "", RetryPolicyExponential, RetryPolicyConstant:
	default:
		return errors.New("retry policy must be one of: [exponential, constant]")
	}
	if c.ExponentialBackoffInitialInterval < 0 || c.ConstantBackoffInterval < 0 {
		return errors.New("backoff interval must not be negative")
	}
	if c.ExponentialBackoffMultiplier != 0 && c.ExponentialBackoffMultiplier <= 1 {
		return errors.New("exponential backoff multiplier must be greater than 1")
	}
	return nil
}

// BackoffPolicy builds the policy selected by the configuration.
func (c *RetriesConfig) BackoffPolicy() BackoffPolicy {
	if c.Policy == RetryPolicyConstant {
		interval := c.ConstantBackoffInterval
		return BackoffPolicyFunc(func() backoff.BackOff {
			bf := backoff.NewConstantBackOff(interval)
			bf.Reset()
			return bf
		})
	}

	initialInterval := c.ExponentialBackoffInitialInterval
	if initialInterval == 0 {
		initialInterval = DefaultExponentialBackoffInitialInterval
	}
	multiplier := c.ExponentialBackoffMultiplier
	if multiplier == 0 {
		multiplier = DefaultExponentialBackoffMultiplier
	}
	return BackoffPolicyFunc(func() backoff.BackOff {
		bf := backoff.NewExponentialBackOff()
		bf.InitialInterval = initialInterval
		bf.Multiplier = multiplier
		bf.Reset()
		return bf
	})
}

// RateLimitConfig configures the rate limiting round tripper.
type RateLimitConfig struct {
	// Enabled turns client-side rate limiting on.
	Enabled bool `mapstructure:"enabled"`

	// Limit is the sustained number of requests per second.
	Limit int `mapstructure:"limit"`

	// Burst allows temporary spikes in request rate.
	Burst int `mapstructure:"burst"`

	// WaitTimeout limits how long a request may wait for a limiter token.
	WaitTimeout time.Duration `mapstructure:"waitTimeout"`
}

func (c *RateLimitConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Limit <= 0 {
		return errors.New("rate limit must be positive")
	}
	if c.Burst < 0 {
		return errors.New("rate limit burst must not be negative")
	}
	if c.WaitTimeout < 0 {
		return errors.New("rate limit wait timeout must not be negative")
	}
	return nil
}

// LogConfig configures the logging round tripper.
type LogConfig struct {
	// Enabled turns request logging on.
	Enabled bool `mapstructure:"enabled"`

	// Mode of logging: all (default) or failed.
	Mode LoggingMode `mapstructure:"mode"`

	// SlowRequestThreshold suppresses log records for requests that finish faster.
	SlowRequestThreshold time.Duration `mapstructure:"slowRequestThreshold"`
}

// MetricsConfig configures the metrics round tripper.
type MetricsConfig struct {
	// Enabled turns request duration observations on.
	Enabled bool `mapstructure:"enabled"`
}
