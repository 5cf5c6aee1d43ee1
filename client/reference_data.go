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

// Countries returns a builder for the countries collection.
func (c *Client) Countries() *RequestBuilder {
	return c.get("countries")
}

// CountryByID fetches a single country by its ISO 3166-1 code.
func (c *Client) CountryByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.Country], error) {
	return Send[jsonapi.ResourceDocument[model.Country]](ctx, c.get("countries/"+url.PathEscape(id)))
}

// Regions returns a builder for the regions collection.
func (c *Client) Regions() *RequestBuilder {
	return c.get("regions")
}

// RegionByID fetches a single region by its ISO 3166-2 code.
func (c *Client) RegionByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.Region], error) {
	return Send[jsonapi.ResourceDocument[model.Region]](ctx, c.get("regions/"+url.PathEscape(id)))
}

// Jurisdictions returns a builder for the jurisdictions collection.
func (c *Client) Jurisdictions() *RequestBuilder {
	return c.get("jurisdictions")
}

// JurisdictionByID fetches a single jurisdiction by its code.
func (c *Client) JurisdictionByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.Jurisdiction], error) {
	return Send[jsonapi.ResourceDocument[model.Jurisdiction]](ctx, c.get("jurisdictions/"+url.PathEscape(id)))
}

// EntityLegalForms returns a builder for the entity-legal-forms collection.
func (c *Client) EntityLegalForms() *RequestBuilder {
	return c.get("entity-legal-forms")
}

// EntityLegalFormByID fetches a single entity legal form by its ELF code.
func (c *Client) EntityLegalFormByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.EntityLegalForm], error) {
	return Send[jsonapi.ResourceDocument[model.EntityLegalForm]](ctx, c.get("entity-legal-forms/"+url.PathEscape(id)))
}

// RegistrationAuthorities returns a builder for the registration-authorities collection.
func (c *Client) RegistrationAuthorities() *RequestBuilder {
	return c.get("registration-authorities")
}

// RegistrationAuthorityByID fetches a single registration authority by its RA code.
func (c *Client) RegistrationAuthorityByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.RegistrationAuthority], error) {
	return Send[jsonapi.ResourceDocument[model.RegistrationAuthority]](ctx, c.get("registration-authorities/"+url.PathEscape(id)))
}

// RegistrationAgents returns a builder for the registration-agents collection.
func (c *Client) RegistrationAgents() *RequestBuilder {
	return c.get("registration-agents")
}

// RegistrationAgentByID fetches a single registration agent.
func (c *Client) RegistrationAgentByID(ctx context.Context, id string) (jsonapi.ResourceDocument[model.RegistrationAgent], error) {
	return Send[jsonapi.ResourceDocument[model.RegistrationAgent]](ctx, c.get("registration-agents/"+url.PathEscape(id)))
}
