/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"strconv"

	"github.com/spf13/cast"

	"github.com/acronis/go-gleif/filter"
)

// RequestBuilder accumulates query parameters for a single API request.
// Every setter returns a copy, so builders can be shared and branched freely;
// a prepared builder is never mutated by later calls on its descendants.
type RequestBuilder struct {
	client *Client
	method string
	path   string
	params map[string]string
}

func newRequestBuilder(c *Client, method, path string) *RequestBuilder {
	return &RequestBuilder{
		client: c,
		method: method,
		path:   path,
		params: make(map[string]string),
	}
}

// clone returns a deep copy of the builder with room for one more parameter.
func (rb *RequestBuilder) clone() *RequestBuilder {
	params := make(map[string]string, len(rb.params)+1)
	for k, v := range rb.params {
		params[k] = v
	}
	return &RequestBuilder{
		client: rb.client,
		method: rb.method,
		path:   rb.path,
		params: params,
	}
}

func (rb *RequestBuilder) withParam(key, value string) *RequestBuilder {
	next := rb.clone()
	next.params[key] = value
	return next
}

// FilterEq requires the field to equal value.
func (rb *RequestBuilder) FilterEq(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.Eq(value))
}

// FilterNot requires the field to differ from value.
func (rb *RequestBuilder) FilterNot(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.Not(value))
}

// FilterIn requires the field to equal one of values.
func (rb *RequestBuilder) FilterIn(field string, values ...string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.In(values...))
}

// FilterNotIn requires the field to differ from all of values.
func (rb *RequestBuilder) FilterNotIn(field string, values ...string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.NotIn(values...))
}

// FilterRange requires the field to lie in the inclusive range [min, max].
func (rb *RequestBuilder) FilterRange(field, min, max string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.Range(min, max))
}

// FilterGT requires the field to be strictly greater than value.
func (rb *RequestBuilder) FilterGT(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.GT(value))
}

// FilterGTE requires the field to be greater than or equal to value.
func (rb *RequestBuilder) FilterGTE(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.GTE(value))
}

// FilterLT requires the field to be strictly less than value.
func (rb *RequestBuilder) FilterLT(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.LT(value))
}

// FilterLTE requires the field to be less than or equal to value.
func (rb *RequestBuilder) FilterLTE(field, value string) *RequestBuilder {
	return rb.withParam(filter.Key(field), filter.LTE(value))
}

// Sort orders the result set by the given field. Prefix the field with "-"
// for descending order.
func (rb *RequestBuilder) Sort(field string) *RequestBuilder {
	return rb.withParam("sort", field)
}

// PageNumber selects the 1-based result page.
func (rb *RequestBuilder) PageNumber(n int) *RequestBuilder {
	return rb.withParam("page[number]", strconv.Itoa(n))
}

// PageSize sets the number of records per page.
func (rb *RequestBuilder) PageSize(n int) *RequestBuilder {
	return rb.withParam("page[size]", strconv.Itoa(n))
}

// Param sets an arbitrary query parameter. The value is rendered with
// the usual string conversion rules for scalars.
func (rb *RequestBuilder) Param(key string, value interface{}) *RequestBuilder {
	return rb.withParam(key, cast.ToString(value))
}

// Method returns the HTTP method of the request being built.
func (rb *RequestBuilder) Method() string {
	return rb.method
}

// Path returns the request path relative to the client base URL.
func (rb *RequestBuilder) Path() string {
	return rb.path
}

// Query returns a copy of the accumulated query parameters.
func (rb *RequestBuilder) Query() map[string]string {
	params := make(map[string]string, len(rb.params))
	for k, v := range rb.params {
		params[k] = v
	}
	return params
}
