/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ssgreg/logf"
)

// AcceptHeaderValue is sent with every request per the JSON:API convention.
const AcceptHeaderValue = "application/vnd.api+json"

// Send executes the built request and decodes the response body into R.
// It acquires the client throttler exactly once and performs exactly one
// HTTP call; retries, if any, happen below in the transport.
func Send[R any](ctx context.Context, rb *RequestBuilder) (R, error) {
	var result R

	body, err := SendRaw(ctx, rb)
	if err != nil {
		return result, err
	}

	if err = json.Unmarshal(body, &result); err != nil {
		return result, &DecodingError{Inner: err, Body: body}
	}
	return result, nil
}

// SendRaw executes the built request and returns the raw response body
// of a 2xx answer. Error handling is identical to Send.
func SendRaw(ctx context.Context, rb *RequestBuilder) (json.RawMessage, error) {
	c := rb.client

	reqURL, err := c.baseURL.Parse(rb.path)
	if err != nil {
		return nil, &URLError{Path: rb.path, Inner: err}
	}
	if len(rb.params) != 0 {
		query := make(url.Values, len(rb.params))
		for k, v := range rb.params {
			query.Set(k, v)
		}
		reqURL.RawQuery = query.Encode()
	}

	if err = c.throttler.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("acquire request slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, rb.method, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", AcceptHeaderValue)
	req.Header.Set("User-Agent", c.userAgent)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: rb.method, URL: reqURL.String(), Inner: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: rb.method, URL: reqURL.String(), Inner: err}
	}

	c.logger.Debug("gleif api request finished",
		logf.String("method", rb.method),
		logf.String("url", reqURL.String()),
		logf.Int("status_code", resp.StatusCode),
		logf.Duration("elapsed", time.Since(startTime)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{
			Method:     rb.method,
			URL:        reqURL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}
	return body, nil
}
