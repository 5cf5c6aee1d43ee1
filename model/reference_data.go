/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package model

// Country is an ISO 3166-1 country entry.
type Country struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes CountryAttributes `json:"attributes"`
}

// CountryAttributes holds the country code and English name.
type CountryAttributes struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Region is an ISO 3166-2 subdivision entry.
type Region struct {
	Type       string           `json:"type"`
	ID         string           `json:"id"`
	Attributes RegionAttributes `json:"attributes"`
}

// RegionAttributes holds the region code and its localized names.
type RegionAttributes struct {
	Code  string       `json:"code"`
	Name  string       `json:"name,omitempty"`
	Names []RegionName `json:"names"`
}

// RegionName is a localized region name.
type RegionName struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Jurisdiction is a legal jurisdiction entry.
type Jurisdiction struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id"`
	Attributes JurisdictionAttributes `json:"attributes"`
}

// JurisdictionAttributes holds the jurisdiction code and name.
type JurisdictionAttributes struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// EntityLegalForm is an ISO 20275 legal form entry.
type EntityLegalForm struct {
	Type       string                    `json:"type"`
	ID         string                    `json:"id"`
	Attributes EntityLegalFormAttributes `json:"attributes"`
}

// EntityLegalFormAttributes describes a legal form. Status is "ACTV" or "INAC".
type EntityLegalFormAttributes struct {
	Code            string                `json:"code"`
	Country         string                `json:"country"`
	Jurisdiction    string                `json:"jurisdiction,omitempty"`
	CountryCode     string                `json:"countryCode"`
	SubdivisionCode string                `json:"subdivisionCode,omitempty"`
	DateCreated     string                `json:"dateCreated"`
	Status          string                `json:"status"`
	Names           []EntityLegalFormName `json:"names"`
}

// EntityLegalFormName is one local or transliterated name of a legal form.
type EntityLegalFormName struct {
	LocalName          string `json:"localName"`
	Language           string `json:"language"`
	LanguageCode       string `json:"languageCode"`
	TransliteratedName string `json:"transliteratedName"`
}

// RegistrationAuthority is an entry from the GLEIF Registration Authorities list.
type RegistrationAuthority struct {
	Type       string                          `json:"type"`
	ID         string                          `json:"id"`
	Attributes RegistrationAuthorityAttributes `json:"attributes"`
}

// RegistrationAuthorityAttributes describes a business registry.
type RegistrationAuthorityAttributes struct {
	Code                          string                              `json:"code"`
	InternationalName             string                              `json:"internationalName,omitempty"`
	LocalName                     string                              `json:"localName,omitempty"`
	InternationalOrganizationName string                              `json:"internationalOrganizationName,omitempty"`
	LocalOrganizationName         string                              `json:"localOrganizationName,omitempty"`
	Website                       string                              `json:"website"`
	Jurisdictions                 []RegistrationAuthorityJurisdiction `json:"jurisdictions"`
}

// RegistrationAuthorityJurisdiction names a jurisdiction covered by an authority.
type RegistrationAuthorityJurisdiction struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// RegistrationAgent is an organization helping entities register LEIs through an issuer.
type RegistrationAgent struct {
	Type       string                      `json:"type"`
	ID         string                      `json:"id"`
	Attributes RegistrationAgentAttributes `json:"attributes"`
}

// RegistrationAgentAttributes describes a registration agent.
type RegistrationAgentAttributes struct {
	Name      string   `json:"name"`
	LEI       string   `json:"lei,omitempty"`
	LEIIssuer string   `json:"leiIssuer"`
	Websites  []string `json:"websites"`
}
