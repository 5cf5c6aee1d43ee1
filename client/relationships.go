/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package client

import (
	"context"
	"net/url"

	"github.com/acronis/go-gleif/jsonapi"
	"github.com/acronis/go-gleif/model"
)

// RelationshipRecords returns a builder for the relationship-records collection.
func (c *Client) RelationshipRecords() *RequestBuilder {
	return c.get("relationship-records")
}

// RelationshipRecordByID fetches a single relationship record.
func (c *Client) RelationshipRecordByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.RelationshipRecord], error) {
	return Send[jsonapi.ResourceDocument[model.RelationshipRecord]](ctx, c.get("relationship-records/"+url.PathEscape(id)))
}

// ReportingExceptions returns a builder for the reporting-exceptions collection.
func (c *Client) ReportingExceptions() *RequestBuilder {
	return c.get("reporting-exceptions")
}

// ReportingExceptionByID fetches a single reporting exception.
func (c *Client) ReportingExceptionByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.ReportingException], error) {
	return Send[jsonapi.ResourceDocument[model.ReportingException]](ctx, c.get("reporting-exceptions/"+url.PathEscape(id)))
}
