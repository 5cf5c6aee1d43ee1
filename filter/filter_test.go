/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	require.Equal(t, "filter[entity.status]", Key("entity.status"))
	require.Equal(t, "filter[lei]", Key("lei"))
}

func TestEncodings(t *testing.T) {
	require.Equal(t, "ACTIVE", Eq("ACTIVE"))
	require.Equal(t, "!ACTIVE", Not("ACTIVE"))
	require.Equal(t, "FUND,BRANCH,GENERAL", In("FUND", "BRANCH", "GENERAL"))
	require.Equal(t, "!FUND,BRANCH", NotIn("FUND", "BRANCH"))
	require.Equal(t, "2021-01-01..2021-12-31", Range("2021-01-01", "2021-12-31"))
	require.Equal(t, ">100", GT("100"))
	require.Equal(t, ">=100", GTE("100"))
	require.Equal(t, "<100", LT("100"))
	require.Equal(t, "<=100", LTE("100"))
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		Name string
		Wire string
		Want Expr
	}{
		{Name: "eq", Wire: "ACTIVE", Want: Expr{Op: OpEq, Values: []string{"ACTIVE"}}},
		{Name: "not", Wire: "!ACTIVE", Want: Expr{Op: OpNot, Values: []string{"ACTIVE"}}},
		{Name: "in", Wire: "FUND,BRANCH,GENERAL", Want: Expr{Op: OpIn, Values: []string{"FUND", "BRANCH", "GENERAL"}}},
		{Name: "not in", Wire: "!FUND,BRANCH", Want: Expr{Op: OpNotIn, Values: []string{"FUND", "BRANCH"}}},
		{Name: "range", Wire: "2021-01-01..2021-12-31", Want: Expr{Op: OpRange, Values: []string{"2021-01-01", "2021-12-31"}}},
		{Name: "gt", Wire: ">100", Want: Expr{Op: OpGT, Values: []string{"100"}}},
		{Name: "gte", Wire: ">=100", Want: Expr{Op: OpGTE, Values: []string{"100"}}},
		{Name: "lt", Wire: "<100", Want: Expr{Op: OpLT, Values: []string{"100"}}},
		{Name: "lte", Wire: "<=100", Want: Expr{Op: OpLTE, Values: []string{"100"}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			expr, err := Parse(tt.Wire)
			require.NoError(t, err)
			require.Equal(t, tt.Want, expr)

			encoded, err := Encode(expr)
			require.NoError(t, err)
			require.Equal(t, tt.Wire, encoded)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Name string
		Wire string
	}{
		{Name: "empty", Wire: ""},
		{Name: "bare negation", Wire: "!"},
		{Name: "comparison without value", Wire: ">="},
		{Name: "range without max", Wire: "2021-01-01.."},
		{Name: "range without min", Wire: "..2021-12-31"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Parse(tt.Wire)
			require.Error(t, err)
		})
	}
}

func TestEncodeValueCountValidation(t *testing.T) {
	_, err := Encode(Expr{Op: OpRange, Values: []string{"2021-01-01"}})
	require.Error(t, err)
	_, err = Encode(Expr{Op: OpEq, Values: []string{"a", "b"}})
	require.Error(t, err)
	_, err = Encode(Expr{Op: OpIn})
	require.Error(t, err)
}
