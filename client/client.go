/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package client implements the rate-limited, type-checked request pipeline for
// the GLEIF v1 REST API. A Client owns an injected HTTP client, a parsed base URL
// and a fixed-window throttler; per-endpoint methods hand out RequestBuilders
// that accumulate filters, sorting and pagination before a single throttled Send.
package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/ssgreg/logf"

	"github.com/acronis/go-gleif/throttle"
)

// DefaultBaseURL is the public GLEIF API v1 endpoint.
const DefaultBaseURL = "https://api.gleif.org/api/v1/"

// DefaultUserAgent identifies the library in outgoing requests.
const DefaultUserAgent = "go-gleif"

// Client is a handle to the GLEIF API. It is immutable after construction
// and safe for concurrent use; all mutable state lives in the shared Throttler.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	throttler  *throttle.Throttler
	userAgent  string
	logger     *logf.Logger
}

// Opts provides options for NewWithOpts and MustWithOpts functions.
type Opts struct {
	// HTTPClient performs the actual HTTP calls. http.DefaultClient is used when nil.
	// Use the httpclient package to build one with a full transport chain.
	HTTPClient *http.Client

	// Throttler enforces the request quota. One is built
	// from Config.RateLimit when nil.
	Throttler *throttle.Throttler

	// Logger receives client-level instrumentation. Disabled when nil.
	Logger *logf.Logger

	// UserAgent overrides the default User-Agent header value.
	UserAgent string
}

// New creates a Client from the given configuration.
func New(cfg *Config) (*Client, error) {
	return NewWithOpts(cfg, Opts{})
}

// Must creates a Client from the given configuration and panics if any error occurs.
func Must(cfg *Config) *Client {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWithOpts creates a Client from the given configuration and options.
func NewWithOpts(cfg *Config, opts Opts) (*Client, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}

	throttler := opts.Throttler
	if throttler == nil {
		throttler, err = throttle.New(cfg.RateLimit.Limit, cfg.RateLimit.Interval)
		if err != nil {
			return nil, fmt.Errorf("create throttler: %w", err)
		}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := opts.Logger
	if logger == nil {
		logger = logf.NewDisabledLogger()
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    parsedBaseURL,
		throttler:  throttler,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// MustWithOpts creates a Client from the given configuration and options
// and panics if any error occurs.
func MustWithOpts(cfg *Config, opts Opts) *Client {
	c, err := NewWithOpts(cfg, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseURL returns the parsed base URL of the API.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Throttler returns the throttler shared by all requests of this client.
func (c *Client) Throttler() *throttle.Throttler {
	return c.throttler
}

// Request returns a RequestBuilder for an arbitrary method and path relative to the base URL.
func (c *Client) Request(method, path string) *RequestBuilder {
	return newRequestBuilder(c, method, path)
}

// get returns a GET RequestBuilder for the given path relative to the base URL.
func (c *Client) get(path string) *RequestBuilder {
	return newRequestBuilder(c, http.MethodGet, path)
}
