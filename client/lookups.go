/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"context"
	"net/url"

	"github.com/acronis/go-gleif/field"
	"github.com/acronis/go-gleif/jsonapi"
	"github.com/acronis/go-gleif/model"
)

// ISINs returns a builder for the ISINs mapped to the given LEI.
func (c *Client) ISINs(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/isins")
}

// FieldModifications returns a builder for the change history of the given record.
func (c *Client) FieldModifications(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/field-modifications")
}

// AutoCompletions returns a builder for search term suggestions.
// Only a subset of fields supports completion; f is validated against it.
func (c *Client) AutoCompletions(f field.Field, q string) (*RequestBuilder, error) {
	if _, err := field.ParseWithAllowed(f.String(), field.AutoCompletionFields()); err != nil {
		return nil, err
	}
	return c.get("autocompletions").Param("field", f.String()).Param("q", q), nil
}

// FuzzyCompletions returns a builder for approximate name matches.
// Only a subset of fields supports fuzzy matching; f is validated against it.
func (c *Client) FuzzyCompletions(f field.Field, q string) (*RequestBuilder, error) {
	if _, err := field.ParseWithAllowed(f.String(), field.FuzzyCompletionFields()); err != nil {
		return nil, err
	}
	return c.get("fuzzycompletions").Param("field", f.String()).Param("q", q), nil
}

// Fields returns a builder for the field metadata collection.
func (c *Client) Fields() *RequestBuilder {
	return c.get("fields")
}

// FieldByID fetches the metadata of a single field.
func (c *Client) FieldByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.MetadataField], error) {
	return Send[jsonapi.ResourceDocument[model.MetadataField]](ctx, c.get("fields/"+url.PathEscape(id)))
}
