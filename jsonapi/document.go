/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package jsonapi models the JSON:API response envelope of the GLEIF API:
// optional metadata (golden copy publish date, pagination), optional
// navigation links and a mandatory data member that holds either a single
// resource object or an array of them.
//
// Which shape the data member takes is determined by the endpoint, not
// declared by the caller. Document and OneOrMany resolve the shape while
// decoding and preserve the distinction: a single object and a one-element
// array are different results and are never coerced into each other.
// Endpoints whose shape is statically known use ResourceDocument and
// ResourceListDocument instead.
package jsonapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Document is the response envelope for endpoints whose data member may be a
// single resource or an array of resources.
type Document[T any] struct {
	Meta  *Meta        `json:"meta,omitempty"`
	Links *Links       `json:"links,omitempty"`
	Data  OneOrMany[T] `json:"data"`
}

// ResourceDocument is the envelope for endpoints that always return exactly one resource.
type ResourceDocument[T any] struct {
	Meta  *Meta  `json:"meta,omitempty"`
	Links *Links `json:"links,omitempty"`
	Data  T      `json:"data"`
}

// ResourceListDocument is the envelope for endpoints that always return a list of resources.
type ResourceListDocument[T any] struct {
	Meta  *Meta  `json:"meta,omitempty"`
	Links *Links `json:"links,omitempty"`
	Data  []T    `json:"data"`
}

// Meta carries response metadata.
type Meta struct {
	GoldenCopy *GoldenCopy `json:"goldenCopy,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// GoldenCopy carries the publish date of the golden copy the response was served from.
type GoldenCopy struct {
	PublishDate time.Time `json:"publishDate"`
}

// Pagination carries paging info of a collection response.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
	Total       int `json:"total"`
	LastPage    int `json:"lastPage"`
}

// Links carries navigation URLs of a paginated response.
type Links struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// DataTypeError is returned when the data member of an envelope is neither a
// JSON object nor a JSON array.
type DataTypeError struct {
	// Kind is the JSON value kind that was actually found (string, number, boolean, null).
	Kind string
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("data member must be a JSON object or array, got %s", e.Kind)
}

// OneOrMany holds the data member of a Document: either exactly one resource
// (the endpoint addressed a single resource) or a list of resources (the
// endpoint addressed a collection, possibly empty). The two variants are
// semantically distinct and are resolved from the JSON value kind while
// decoding.
type OneOrMany[T any] struct {
	one     *T
	many    []T
	isMany  bool
	present bool
}

// One creates a OneOrMany holding a single resource.
func One[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{one: &v, present: true}
}

// Many creates a OneOrMany holding a list of resources.
func Many[T any](vs []T) OneOrMany[T] {
	if vs == nil {
		vs = []T{}
	}
	return OneOrMany[T]{many: vs, isMany: true, present: true}
}

// IsMany reports whether the multiple-resource variant was decoded.
func (d OneOrMany[T]) IsMany() bool {
	return d.isMany
}

// Present reports whether the data member was present in the decoded envelope.
func (d OneOrMany[T]) Present() bool {
	return d.present
}

// One returns the single resource and true when the single variant is held.
func (d OneOrMany[T]) One() (T, bool) {
	if d.present && !d.isMany {
		return *d.one, true
	}
	var zero T
	return zero, false
}

// Many returns the resource list and true when the multiple variant is held.
// The list may be empty.
func (d OneOrMany[T]) Many() ([]T, bool) {
	if d.present && d.isMany {
		return d.many, true
	}
	return nil, false
}

// UnmarshalJSON dispatches on the JSON value kind of the payload: an object
// decodes into the single variant, an array into the multiple variant, and
// anything else fails with a *DataTypeError.
func (d *OneOrMany[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		return &DataTypeError{Kind: "empty value"}
	}

	switch trimmed[0] {
	case '{':
		var one T
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*d = OneOrMany[T]{one: &one, present: true}
		return nil
	case '[':
		many := []T{}
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*d = OneOrMany[T]{many: many, isMany: true, present: true}
		return nil
	default:
		return &DataTypeError{Kind: jsonKind(trimmed[0])}
	}
}

// MarshalJSON writes the held variant back in its original shape.
func (d OneOrMany[T]) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	if d.isMany {
		return json.Marshal(d.many)
	}
	return json.Marshal(d.one)
}

func jsonKind(firstByte byte) string {
	switch firstByte {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
