/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package filter implements the wire-level encoding of GLEIF API filter expressions.
//
// The API accepts filters as query parameters of the form filter[<field>]=<value>,
// where the value carries the comparison operator in-band: "!" for negation,
// "," to join set members, ".." for ranges and the usual ">"/">="/"<"/"<="
// prefixes for comparisons. Encoding and parsing are pure functions with no
// I/O; the produced strings must match the remote API bit for bit.
package filter

import (
	"fmt"
	"strings"
)

// Op identifies a filter comparison operator.
type Op int

// Supported filter operators.
const (
	OpEq Op = iota
	OpNot
	OpIn
	OpNotIn
	OpRange
	OpGT
	OpGTE
	OpLT
	OpLTE
)

// String returns a human-readable operator name.
func (op Op) String() string {
	switch op {
	case OpEq:
		return "eq"
	case OpNot:
		return "not"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not-in"
	case OpRange:
		return "range"
	case OpGT:
		return "gt"
	case OpGTE:
		return "gte"
	case OpLT:
		return "lt"
	case OpLTE:
		return "lte"
	}
	return fmt.Sprintf("unknown(%d)", int(op))
}

// Expr is a decoded filter expression: an operator plus its operand values.
// OpRange always carries exactly two values (min, max); OpIn and OpNotIn carry
// one or more; all other operators carry exactly one.
type Expr struct {
	Op     Op
	Values []string
}

// Key returns the wire-level query parameter name for a filter on the given field.
func Key(field string) string {
	return "filter[" + field + "]"
}

// Eq encodes an exact-match filter value.
func Eq(value string) string {
	return value
}

// Not encodes a negated exact-match filter value ("!value").
func Not(value string) string {
	return "!" + value
}

// In encodes a set-inclusion filter value ("v1,v2,v3").
func In(values ...string) string {
	return strings.Join(values, ",")
}

// NotIn encodes a set-exclusion filter value ("!v1,v2,v3").
func NotIn(values ...string) string {
	return "!" + strings.Join(values, ",")
}

// Range encodes an inclusive range filter value ("min..max").
func Range(min, max string) string {
	return min + ".." + max
}

// GT encodes a greater-than filter value (">value").
func GT(value string) string {
	return ">" + value
}

// GTE encodes a greater-or-equal filter value (">=value").
func GTE(value string) string {
	return ">=" + value
}

// LT encodes a less-than filter value ("<value").
func LT(value string) string {
	return "<" + value
}

// LTE encodes a less-or-equal filter value ("<=value").
func LTE(value string) string {
	return "<=" + value
}

// Encode encodes an Expr back to its wire value.
// It is the inverse of Parse.
func Encode(e Expr) (string, error) {
	switch e.Op {
	case OpEq, OpNot, OpGT, OpGTE, OpLT, OpLTE:
		if len(e.Values) != 1 {
			return "", fmt.Errorf("operator %s requires exactly one value, got %d", e.Op, len(e.Values))
		}
	case OpRange:
		if len(e.Values) != 2 {
			return "", fmt.Errorf("operator %s requires exactly two values, got %d", e.Op, len(e.Values))
		}
	case OpIn, OpNotIn:
		if len(e.Values) == 0 {
			return "", fmt.Errorf("operator %s requires at least one value", e.Op)
		}
	default:
		return "", fmt.Errorf("unsupported operator %s", e.Op)
	}

	switch e.Op {
	case OpEq:
		return Eq(e.Values[0]), nil
	case OpNot:
		return Not(e.Values[0]), nil
	case OpIn:
		return In(e.Values...), nil
	case OpNotIn:
		return NotIn(e.Values...), nil
	case OpRange:
		return Range(e.Values[0], e.Values[1]), nil
	case OpGT:
		return GT(e.Values[0]), nil
	case OpGTE:
		return GTE(e.Values[0]), nil
	case OpLT:
		return LT(e.Values[0]), nil
	default:
		return LTE(e.Values[0]), nil
	}
}

// Parse decodes a wire filter value back to operator and operands.
// A negated multi-value string decodes as OpNotIn and a plain multi-value
// string as OpIn; single values decode as OpNot/OpEq respectively.
func Parse(wire string) (Expr, error) {
	if wire == "" {
		return Expr{}, fmt.Errorf("empty filter value")
	}

	switch {
	case strings.HasPrefix(wire, ">="):
		return singleValueExpr(OpGTE, wire[2:])
	case strings.HasPrefix(wire, "<="):
		return singleValueExpr(OpLTE, wire[2:])
	case strings.HasPrefix(wire, ">"):
		return singleValueExpr(OpGT, wire[1:])
	case strings.HasPrefix(wire, "<"):
		return singleValueExpr(OpLT, wire[1:])
	}

	if min, max, ok := strings.Cut(wire, ".."); ok {
		if min == "" || max == "" {
			return Expr{}, fmt.Errorf("range filter %q must have both bounds", wire)
		}
		return Expr{Op: OpRange, Values: []string{min, max}}, nil
	}

	if rest, ok := strings.CutPrefix(wire, "!"); ok {
		if rest == "" {
			return Expr{}, fmt.Errorf("negated filter %q has no value", wire)
		}
		if strings.Contains(rest, ",") {
			return Expr{Op: OpNotIn, Values: strings.Split(rest, ",")}, nil
		}
		return Expr{Op: OpNot, Values: []string{rest}}, nil
	}

	if strings.Contains(wire, ",") {
		return Expr{Op: OpIn, Values: strings.Split(wire, ",")}, nil
	}
	return Expr{Op: OpEq, Values: []string{wire}}, nil
}

func singleValueExpr(op Op, value string) (Expr, error) {
	if value == "" {
		return Expr{}, fmt.Errorf("comparison filter (%s) has no value", op)
	}
	return Expr{Op: op, Values: []string{value}}, nil
}
