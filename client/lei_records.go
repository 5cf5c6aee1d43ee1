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

// LEIRecords returns a builder for the lei-records collection.
func (c *Client) LEIRecords() *RequestBuilder {
	return c.get("lei-records")
}

// LEIRecordByID fetches a single LEI record.
func (c *Client) LEIRecordByID(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIRecord], error) {
	return Send[jsonapi.ResourceDocument[model.LEIRecord]](ctx, c.get("lei-records/"+url.PathEscape(lei)))
}

// UltimateParent fetches the LEI record of the ultimate parent of the given entity.
func (c *Client) UltimateParent(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIRecord], error) {
	return Send[jsonapi.ResourceDocument[model.LEIRecord]](ctx, c.get("lei-records/"+url.PathEscape(lei)+"/ultimate-parent"))
}

// DirectParent fetches the LEI record of the direct parent of the given entity.
func (c *Client) DirectParent(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIRecord], error) {
	return Send[jsonapi.ResourceDocument[model.LEIRecord]](ctx, c.get("lei-records/"+url.PathEscape(lei)+"/direct-parent"))
}

// UltimateChildren returns a builder for the ultimate children of the given entity.
func (c *Client) UltimateChildren(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/ultimate-children")
}

// DirectChildren returns a builder for the direct children of the given entity.
func (c *Client) DirectChildren(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/direct-children")
}

// AssociatedEntity fetches the LEI record associated with the given entity,
// for example the fund family head of a fund.
func (c *Client) AssociatedEntity(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIRecord], error) {
	return Send[jsonapi.ResourceDocument[model.LEIRecord]](ctx, c.get("lei-records/"+url.PathEscape(lei)+"/associated-entity"))
}

// SuccessorEntity fetches the LEI record of the successor of the given entity.
func (c *Client) SuccessorEntity(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIRecord], error) {
	return Send[jsonapi.ResourceDocument[model.LEIRecord]](ctx, c.get("lei-records/"+url.PathEscape(lei)+"/successor-entity"))
}

// ManagingLOU fetches the LEI issuer currently managing the given record.
func (c *Client) ManagingLOU(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIIssuer], error) {
	return Send[jsonapi.ResourceDocument[model.LEIIssuer]](ctx, c.get("lei-records/"+url.PathEscape(lei)+"/managing-lou"))
}

// DirectParentRelationship fetches the relationship record linking the given
// entity to its direct parent.
func (c *Client) DirectParentRelationship(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.RelationshipRecord], error) {
	return Send[jsonapi.ResourceDocument[model.RelationshipRecord]](ctx,
		c.get("lei-records/"+url.PathEscape(lei)+"/direct-parent-relationship"))
}

// UltimateParentRelationship fetches the relationship record linking the given
// entity to its ultimate parent.
func (c *Client) UltimateParentRelationship(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.RelationshipRecord], error) {
	return Send[jsonapi.ResourceDocument[model.RelationshipRecord]](ctx,
		c.get("lei-records/"+url.PathEscape(lei)+"/ultimate-parent-relationship"))
}

// DirectChildRelationships returns a builder for the relationship records
// linking the given entity to its direct children.
func (c *Client) DirectChildRelationships(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/direct-child-relationships")
}

// UltimateChildRelationships returns a builder for the relationship records
// linking the given entity to its ultimate children.
func (c *Client) UltimateChildRelationships(lei string) *RequestBuilder {
	return c.get("lei-records/" + url.PathEscape(lei) + "/ultimate-child-relationships")
}

// DirectParentReportingException fetches the reporting exception the given
// entity declared instead of a direct parent relationship.
func (c *Client) DirectParentReportingException(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.ReportingException], error) {
	return Send[jsonapi.ResourceDocument[model.ReportingException]](ctx,
		c.get("lei-records/"+url.PathEscape(lei)+"/direct-parent-reporting-exception"))
}

// UltimateParentReportingException fetches the reporting exception the given
// entity declared instead of an ultimate parent relationship.
func (c *Client) UltimateParentReportingException(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.ReportingException], error) {
	return Send[jsonapi.ResourceDocument[model.ReportingException]](ctx,
		c.get("lei-records/"+url.PathEscape(lei)+"/ultimate-parent-reporting-exception"))
}
