/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package model

import "time"

// LEIIssuer is a Local Operating Unit accredited to issue LEIs.
type LEIIssuer struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    LEIIssuerAttributes     `json:"attributes"`
	Relationships *LEIIssuerRelationships `json:"relationships,omitempty"`
}

// LEIIssuerAttributes carries the issuer reference data.
type LEIIssuerAttributes struct {
	LEI               string    `json:"lei"`
	Name              string    `json:"name"`
	MarketingName     string    `json:"marketingName"`
	Website           string    `json:"website"`
	AccreditationDate time.Time `json:"accreditationDate"`
}

// LEIIssuerRelationships lists the jurisdictions an issuer is accredited for.
type LEIIssuerRelationships struct {
	Jurisdictions     RelationshipLinks `json:"jurisdictions"`
	FundJurisdictions RelationshipLinks `json:"fundJurisdictions"`
}

// LEIIssuerJurisdiction is a single accreditation of an issuer in a jurisdiction.
type LEIIssuerJurisdiction struct {
	Type       string                          `json:"type"`
	ID         string                          `json:"id"`
	Attributes LEIIssuerJurisdictionAttributes `json:"attributes"`
}

// LEIIssuerJurisdictionAttributes describes an issuer accreditation.
type LEIIssuerJurisdictionAttributes struct {
	CountryCode          string     `json:"countryCode"`
	AccreditedAs         string     `json:"accreditedAs"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	IsAccreditedForFunds bool       `json:"isAccreditedForFunds"`
}
