/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"net/http"
	"time"

	"github.com/ssgreg/logf"
)

// LoggingMode represents a mode of logging.
type LoggingMode string

// Logging modes.
const (
	LoggingModeAll    LoggingMode = "all"
	LoggingModeFailed LoggingMode = "failed"
)

// IsValid checks if the logging mode is valid.
func (lm LoggingMode) IsValid() bool {
	switch lm {
	case LoggingModeAll, LoggingModeFailed:
		return true
	}
	return false
}

// LoggingRoundTripperOpts represents options for LoggingRoundTripper.
type LoggingRoundTripperOpts struct {
	// Logger receives the log records. A disabled logger is used when nil.
	Logger *logf.Logger

	// Mode of logging: all (default) or failed.
	Mode LoggingMode

	// SlowRequestThreshold suppresses records for requests that finish faster.
	SlowRequestThreshold time.Duration
}

// LoggingRoundTripper is an HTTP transport that logs outgoing requests.
type LoggingRoundTripper struct {
	// Delegate is the next RoundTripper in the chain.
	Delegate http.RoundTripper

	opts LoggingRoundTripperOpts
}

// NewLoggingRoundTripper creates an HTTP transport that logs all outgoing requests.
func NewLoggingRoundTripper(delegate http.RoundTripper, logger *logf.Logger) http.RoundTripper {
	return NewLoggingRoundTripperWithOpts(delegate, LoggingRoundTripperOpts{Logger: logger})
}

// NewLoggingRoundTripperWithOpts creates an HTTP transport that logs outgoing requests with options.
func NewLoggingRoundTripperWithOpts(delegate http.RoundTripper, opts LoggingRoundTripperOpts) http.RoundTripper {
	if opts.Logger == nil {
		opts.Logger = logf.NewDisabledLogger()
	}
	if opts.Mode == "" {
		opts.Mode = LoggingModeAll
	}
	return &LoggingRoundTripper{Delegate: delegate, opts: opts}
}

// RoundTrip executes a single HTTP transaction and logs its outcome.
func (rt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.Delegate.RoundTrip(r)
	elapsed := time.Since(start)

	if elapsed < rt.opts.SlowRequestThreshold {
		return resp, err
	}

	fields := []logf.Field{
		logf.String("method", r.Method),
		logf.String("url", r.URL.String()),
		logf.Duration("elapsed", elapsed),
	}
	if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
		fields = append(fields, logf.String("request_id", requestID))
	}

	if err != nil {
		rt.opts.Logger.Error("http client request failed", append(fields, logf.Error(err))...)
		return resp, err
	}

	fields = append(fields, logf.Int("status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		rt.opts.Logger.Warn("http client request finished with error status", fields...)
		return resp, nil
	}
	if rt.opts.Mode == LoggingModeAll {
		rt.opts.Logger.Info("http client request finished", fields...)
	}
	return resp, nil
}
