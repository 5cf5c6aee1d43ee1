/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"

	"github.com/acronis/go-gleif/internal/logtest"
)

func constantPolicy(interval time.Duration) BackoffPolicy {
	return BackoffPolicyFunc(func() backoff.BackOff {
		return backoff.NewConstantBackOff(interval)
	})
}

func TestRetryableRoundTripperRetriesOnServerError(t *testing.T) {
	var requestsDone int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestsDone++
		if requestsDone < 3 {
			rw.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRetryableRoundTripperWithOpts(http.DefaultTransport, RetryableRoundTripperOpts{
		BackoffPolicy: constantPolicy(time.Millisecond * 10),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 3, requestsDone)
}

func TestRetryableRoundTripperSetsAttemptHeader(t *testing.T) {
	var attemptHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		attemptHeaders = append(attemptHeaders, r.Header.Get(RetryAttemptNumberHeader))
		rw.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	rt, err := NewRetryableRoundTripperWithOpts(http.DefaultTransport, RetryableRoundTripperOpts{
		MaxRetryAttempts: 2,
		BackoffPolicy:    constantPolicy(time.Millisecond),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, []string{"", "1", "2"}, attemptHeaders)
}

func TestRetryableRoundTripperHonorsRetryAfterHeader(t *testing.T) {
	var requestsDone int
	var gap time.Duration
	var lastSeen time.Time
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestsDone++
		if requestsDone == 1 {
			lastSeen = time.Now()
			rw.Header().Set("Retry-After", "1")
			rw.WriteHeader(http.StatusTooManyRequests)
			return
		}
		gap = time.Since(lastSeen)
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRetryableRoundTripperWithOpts(http.DefaultTransport, RetryableRoundTripperOpts{
		BackoffPolicy: constantPolicy(time.Millisecond),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, 2, requestsDone)
	require.GreaterOrEqual(t, gap, 900*time.Millisecond)
}

func TestRetryableRoundTripperMaxAttemptsExceeded(t *testing.T) {
	var requestsDone int
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestsDone++
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	recorder := logtest.NewRecorder()
	rt, err := NewRetryableRoundTripperWithOpts(http.DefaultTransport, RetryableRoundTripperOpts{
		Logger:           recorder.Logger,
		MaxRetryAttempts: 3,
		BackoffPolicy:    constantPolicy(time.Millisecond),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, 4, requestsDone)

	entry, found := recorder.FindEntry("max retry attempts exceeded")
	require.True(t, found)
	doneField, ok := entry.FindField("requests_done")
	require.True(t, ok)
	require.EqualValues(t, 4, doneField.Int)
}

func TestRetryableRoundTripperRewindsRequestBody(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		b, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)
		bodies = append(bodies, string(b))
		if len(bodies) < 2 {
			rw.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRetryableRoundTripperWithOpts(http.DefaultTransport, RetryableRoundTripperOpts{
		BackoffPolicy: constantPolicy(time.Millisecond),
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Post(server.URL, "text/plain", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, []string{"payload", "payload"}, bodies)
}

func TestParseRetryAfterFromResponse(t *testing.T) {
	makeResp := func(headerVal string) *http.Response {
		resp := &http.Response{Header: http.Header{}}
		if headerVal != "" {
			resp.Header.Set("Retry-After", headerVal)
		}
		return resp
	}

	_, ok := parseRetryAfterFromResponse(makeResp(""))
	require.False(t, ok)

	d, ok := parseRetryAfterFromResponse(makeResp("42"))
	require.True(t, ok)
	require.Equal(t, 42*time.Second, d)

	_, ok = parseRetryAfterFromResponse(makeResp("-1"))
	require.False(t, ok)

	future := time.Now().Add(time.Minute).UTC().Format(time.RFC1123)
	d, ok = parseRetryAfterFromResponse(makeResp(future))
	require.True(t, ok)
	require.Greater(t, d, 50*time.Second)

	_, ok = parseRetryAfterFromResponse(makeResp("not-a-date"))
	require.False(t, ok)
}

func TestDefaultCheckRetry(t *testing.T) {
	tests := []struct {
		statusCode int
		want       bool
	}{
		{http.StatusOK, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.statusCode), func(t *testing.T) {
			got, err := DefaultCheckRetry(nil, &http.Response{StatusCode: tt.statusCode}, nil, 0)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
