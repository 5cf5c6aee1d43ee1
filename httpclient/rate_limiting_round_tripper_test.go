/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRateLimitingRoundTripperInvalidArgs(t *testing.T) {
	_, err := NewRateLimitingRoundTripper(http.DefaultTransport, 0)
	require.Error(t, err)

	_, err = NewRateLimitingRoundTripper(http.DefaultTransport, -1)
	require.Error(t, err)

	_, err = NewRateLimitingRoundTripperWithOpts(http.DefaultTransport, 10, RateLimitingRoundTripperOpts{Burst: -1})
	require.Error(t, err)
}

func TestRateLimitingRoundTripperSmoothsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// 10 rps, the first request spends no token wait.
	rt, err := NewRateLimitingRoundTripper(http.DefaultTransport, 10)
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	start := time.Now()
	const requestsCount = 4
	for i := 0; i < requestsCount; i++ {
		resp, respErr := client.Get(server.URL)
		require.NoError(t, respErr)
		_ = resp.Body.Close()
	}
	elapsed := time.Since(start)
	require.GreaterOrEqual(t, elapsed, time.Duration(requestsCount-1)*100*time.Millisecond/2)
}

func TestRateLimitingRoundTripperWaitTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRateLimitingRoundTripperWithOpts(http.DefaultTransport, 1, RateLimitingRoundTripperOpts{
		WaitTimeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	// The bucket is empty now and cannot refill within the wait timeout.
	_, err = client.Get(server.URL)
	require.Error(t, err)
	var waitErr *RateLimitingWaitError
	require.ErrorAs(t, err, &waitErr)
}
