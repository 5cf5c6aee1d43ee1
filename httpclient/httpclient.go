/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package httpclient assembles http.Client instances whose transport is a chain of
// round trippers for logging, metrics, client-side rate limiting, request IDs,
// bearer authorization and retries. Each round tripper can also be used on its own.
package httpclient

import (
	"fmt"
	"net/http"

	"github.com/ssgreg/logf"
)

// CloneHTTPRequest creates a shallow copy of the request along with a deep copy of the Headers.
func CloneHTTPRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = CloneHTTPHeader(req.Header)
	return r
}

// CloneHTTPHeader creates a deep copy of an http.Header.
func CloneHTTPHeader(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for key, values := range in {
		newValues := make([]string, len(values))
		copy(newValues, values)
		out[key] = newValues
	}
	return out
}

// New creates an http.Client with a transport chain built from the given configuration.
func New(cfg *Config) (*http.Client, error) {
	return NewWithOpts(cfg, Opts{})
}

// Must creates an http.Client with a transport chain built from the given configuration
// and panics if any error occurs.
func Must(cfg *Config) *http.Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Opts provides options for NewWithOpts and MustWithOpts functions.
type Opts struct {
	// UserAgent is set in outgoing requests that carry no User-Agent header.
	// Takes precedence over Config.UserAgent.
	UserAgent string

	// Delegate is the innermost RoundTripper in the chain.
	// A clone of http.DefaultTransport is used when nil.
	Delegate http.RoundTripper

	// Logger is used by the logging and retryable round trippers.
	Logger *logf.Logger

	// RequestIDProvider generates a value for the X-Request-ID header.
	// A sortable unique ID is generated by default.
	RequestIDProvider func() string

	// Collector receives request duration observations.
	Collector MetricsCollector

	// AuthProvider supplies bearer tokens for outgoing requests.
	// The Authorization header is left untouched when nil.
	AuthProvider AuthProvider
}

// NewWithOpts creates an http.Client with a transport chain built
// from the given configuration and options.
func NewWithOpts(cfg *Config, opts Opts) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	delegate := opts.Delegate
	if delegate == nil {
		delegate = http.DefaultTransport.(*http.Transport).Clone()
	}

	if cfg.Log.Enabled {
		delegate = NewLoggingRoundTripperWithOpts(delegate, LoggingRoundTripperOpts{
			Logger:               opts.Logger,
			Mode:                 cfg.Log.Mode,
			SlowRequestThreshold: cfg.Log.SlowRequestThreshold,
		})
	}

	if cfg.Metrics.Enabled {
		delegate = NewMetricsRoundTripper(delegate, opts.Collector)
	}

	if cfg.RateLimits.Enabled {
		var err error
		delegate, err = NewRateLimitingRoundTripperWithOpts(delegate, cfg.RateLimits.Limit, RateLimitingRoundTripperOpts{
			Burst:       cfg.RateLimits.Burst,
			WaitTimeout: cfg.RateLimits.WaitTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create rate limiting round tripper: %w", err)
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = cfg.UserAgent
	}
	if userAgent != "" {
		delegate = NewUserAgentRoundTripper(delegate, userAgent)
	}

	delegate = NewRequestIDRoundTripperWithOpts(delegate, RequestIDRoundTripperOpts{
		RequestIDProvider: opts.RequestIDProvider,
	})

	if opts.AuthProvider != nil {
		delegate = NewAuthBearerRoundTripper(delegate, opts.AuthProvider)
	}

	if cfg.Retries.Enabled {
		var err error
		delegate, err = NewRetryableRoundTripperWithOpts(delegate, RetryableRoundTripperOpts{
			Logger:           opts.Logger,
			MaxRetryAttempts: cfg.Retries.MaxAttempts,
			BackoffPolicy:    cfg.Retries.BackoffPolicy(),
		})
		if err != nil {
			return nil, fmt.Errorf("create retryable round tripper: %w", err)
		}
	}

	return &http.Client{Transport: delegate, Timeout: cfg.Timeout}, nil
}

// MustWithOpts creates an http.Client with a transport chain built
// from the given configuration and options and panics if any error occurs.
func MustWithOpts(cfg *Config, opts Opts) *http.Client {
	client, err := NewWithOpts(cfg, opts)
	if err != nil {
		panic(err)
	}
	return client
}
