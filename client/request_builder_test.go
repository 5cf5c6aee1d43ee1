/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := NewConfig()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestRequestBuilderFilters(t *testing.T) {
	c := newTestClient(t, "")

	tests := []struct {
		name      string
		build     func() *RequestBuilder
		wantKey   string
		wantValue string
	}{
		{
			name:      "eq",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterEq("entity.legalName", "Acme") },
			wantKey:   "filter[entity.legalName]",
			wantValue: "Acme",
		},
		{
			name:      "not",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterNot("entity.status", "INACTIVE") },
			wantKey:   "filter[entity.status]",
			wantValue: "!INACTIVE",
		},
		{
			name:      "in",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterIn("bic", "AAAADEFF", "BBBBDEFF") },
			wantKey:   "filter[bic]",
			wantValue: "AAAADEFF,BBBBDEFF",
		},
		{
			name:      "not in",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterNotIn("bic", "AAAADEFF", "BBBBDEFF") },
			wantKey:   "filter[bic]",
			wantValue: "!AAAADEFF,BBBBDEFF",
		},
		{
			name: "range",
			build: func() *RequestBuilder {
				return c.LEIRecords().FilterRange("registration.lastUpdateDate", "2024-01-01", "2024-12-31")
			},
			wantKey:   "filter[registration.lastUpdateDate]",
			wantValue: "2024-01-01..2024-12-31",
		},
		{
			name:      "gt",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterGT("registration.lastUpdateDate", "2024-01-01") },
			wantKey:   "filter[registration.lastUpdateDate]",
			wantValue: ">2024-01-01",
		},
		{
			name:      "gte",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterGTE("registration.lastUpdateDate", "2024-01-01") },
			wantKey:   "filter[registration.lastUpdateDate]",
			wantValue: ">=2024-01-01",
		},
		{
			name:      "lt",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterLT("registration.lastUpdateDate", "2024-01-01") },
			wantKey:   "filter[registration.lastUpdateDate]",
			wantValue: "<2024-01-01",
		},
		{
			name:      "lte",
			build:     func() *RequestBuilder { return c.LEIRecords().FilterLTE("registration.lastUpdateDate", "2024-01-01") },
			wantKey:   "filter[registration.lastUpdateDate]",
			wantValue: "<=2024-01-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.build().Query()
			require.Equal(t, map[string]string{tt.wantKey: tt.wantValue}, query)
		})
	}
}

func TestRequestBuilderLastWriteWins(t *testing.T) {
	c := newTestClient(t, "")

	rb := c.LEIRecords().
		FilterEq("entity.status", "ACTIVE").
		FilterNot("entity.status", "INACTIVE").
		Sort("entity.legalName").
		Sort("-entity.legalName")

	require.Equal(t, map[string]string{
		"filter[entity.status]": "!INACTIVE",
		"sort":                  "-entity.legalName",
	}, rb.Query())
}

func TestRequestBuilderImmutability(t *testing.T) {
	c := newTestClient(t, "")

	base := c.LEIRecords().FilterEq("entity.legalAddress.country", "DE")
	active := base.FilterEq("entity.status", "ACTIVE")
	paged := base.PageNumber(2).PageSize(50)

	require.Equal(t, map[string]string{
		"filter[entity.legalAddress.country]": "DE",
	}, base.Query(), "branching must not mutate the parent builder")
	require.Equal(t, map[string]string{
		"filter[entity.legalAddress.country]": "DE",
		"filter[entity.status]":               "ACTIVE",
	}, active.Query())
	require.Equal(t, map[string]string{
		"filter[entity.legalAddress.country]": "DE",
		"page[number]":                        "2",
		"page[size]":                          "50",
	}, paged.Query())
}

func TestRequestBuilderParam(t *testing.T) {
	c := newTestClient(t, "")

	rb := c.Request(http.MethodGet, "autocompletions").Param("q", "Global").Param("limit", 10)
	require.Equal(t, http.MethodGet, rb.Method())
	require.Equal(t, "autocompletions", rb.Path())
	require.Equal(t, map[string]string{"q": "Global", "limit": "10"}, rb.Query())
}

func TestRequestBuilderQueryReturnsCopy(t *testing.T) {
	c := newTestClient(t, "")

	rb := c.LEIRecords().FilterEq("lei", "5493001KJTIIGC8Y1R12")
	query := rb.Query()
	query["filter[lei]"] = "mutated"
	require.Equal(t, map[string]string{"filter[lei]": "5493001KJTIIGC8Y1R12"}, rb.Query())
}
