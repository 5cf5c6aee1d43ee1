/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"fmt"
)

// URLError is returned when a request path cannot be resolved against the base URL.
type URLError struct {
	Path  string
	Inner error
}

// Error returns a string representation of URLError.
func (e *URLError) Error() string {
	return fmt.Sprintf("resolve request url for path %q: %s", e.Path, e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *URLError) Unwrap() error {
	return e.Inner
}

// ResponseError is returned when the API answers with a non-2xx status code.
// Body carries the raw response payload for diagnostics.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Error returns a string representation of ResponseError.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d", e.Method, e.URL, e.StatusCode)
}

// DecodingError is returned when a 2xx response body cannot be decoded
// into the requested document type.
type DecodingError struct {
	Inner error
	Body  []byte
}

// Error returns a string representation of DecodingError.
func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode response body: %s", e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *DecodingError) Unwrap() error {
	return e.Inner
}

// TransportError is returned when the HTTP round trip itself fails.
type TransportError struct {
	Method string
	URL    string
	Inner  error
}

// Error returns a string representation of TransportError.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *TransportError) Unwrap() error {
	return e.Inner
}
