/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package model contains Go representations of the resources served by the GLEIF API.
// Structs mirror the JSON:API attribute payloads; secondary code lists that the API
// serves as free-form strings (corroboration levels, event types, and so on)
// stay strings here, while the closed enums used for filtering live in the field package.
package model

// RelationshipLinks wraps the links object attached to a resource relationship.
type RelationshipLinks struct {
	Links RelatedLink `json:"links"`
}

// RelatedLink holds the URLs a relationship may expose. All members are optional.
type RelatedLink struct {
	ReportingException  string `json:"reporting-exception,omitempty"`
	RelationshipRecord  string `json:"relationship-record,omitempty"`
	RelationshipRecords string `json:"relationship-records,omitempty"`
	Related             string `json:"related,omitempty"`
	LEIRecord           string `json:"lei-record,omitempty"`
}
