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

// LEIIssuers returns a builder for the lei-issuers collection.
func (c *Client) LEIIssuers() *RequestBuilder {
	return c.get("lei-issuers")
}

// LEIIssuerByID fetches a single LEI issuer by its own LEI.
func (c *Client) LEIIssuerByID(ctx context.Context, lei string) (jsonapi.ResourceDocument[model.LEIIssuer], error) {
	return Send[jsonapi.ResourceDocument[model.LEIIssuer]](ctx, c.get("lei-issuers/"+url.PathEscape(lei)))
}

// LEIIssuerJurisdictions returns a builder for the jurisdictions the given
// issuer is accredited in.
func (c *Client) LEIIssuerJurisdictions(lei string) *RequestBuilder {
	return c.get("lei-issuers/" + url.PathEscape(lei) + "/jurisdictions")
}
