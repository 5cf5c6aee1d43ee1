/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package model

import (
	"time"

	"github.com/acronis/go-gleif/field"
)

// RelationshipRecord describes a reported relationship between two legal entities.
type RelationshipRecord struct {
	Type          string                          `json:"type"`
	ID            string                          `json:"id"`
	Attributes    RelationshipRecordAttributes    `json:"attributes"`
	Relationships RelationshipRecordRelationships `json:"relationships"`
}

// RelationshipRecordAttributes carries the relationship reference data.
type RelationshipRecordAttributes struct {
	ValidFrom    time.Time                `json:"validFrom"`
	ValidTo      *time.Time               `json:"validTo,omitempty"`
	Relationship RelationshipDetails      `json:"relationship"`
	Registration RelationshipRegistration `json:"registration"`
	Extension    RelationshipExtension    `json:"extension"`
}

// RelationshipDetails identifies the two nodes and the nature of the relationship,
// e.g. "IS_DIRECTLY_CONSOLIDATED_BY".
type RelationshipDetails struct {
	StartNode StartEndNode         `json:"startNode"`
	EndNode   StartEndNode         `json:"endNode"`
	Type      string               `json:"type"`
	Status    string               `json:"status"`
	Periods   []RelationshipPeriod `json:"periods"`
}

// StartEndNode references one endpoint of a relationship.
type StartEndNode struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// RelationshipPeriod is a dated period qualifying the relationship.
type RelationshipPeriod struct {
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Type      string     `json:"type"`
}

// RelationshipRegistration holds the LOU registration of the relationship itself.
type RelationshipRegistration struct {
	InitialRegistrationDate time.Time                `json:"initialRegistrationDate"`
	LastUpdateDate          *time.Time               `json:"lastUpdateDate,omitempty"`
	Status                  field.RegistrationStatus `json:"status"`
	NextRenewalDate         time.Time                `json:"nextRenewalDate"`
	ManagingLOU             string                   `json:"managingLou"`
	CorroborationLevel      string                   `json:"corroborationLevel"`
	CorroborationDocuments  string                   `json:"corroborationDocuments"`
	CorroborationReference  string                   `json:"corroborationReference,omitempty"`
}

// RelationshipExtension holds GLEIF-side bookkeeping.
type RelationshipExtension struct {
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// RelationshipRecordRelationships links to the LEI records at each end.
type RelationshipRecordRelationships struct {
	StartNode RelationshipLinks `json:"start-node"`
	EndNode   RelationshipLinks `json:"end-node"`
}

// ReportingException records why a parent relationship was not reported for an entity.
type ReportingException struct {
	Type          string                          `json:"type"`
	ID            string                          `json:"id"`
	Attributes    ReportingExceptionAttributes    `json:"attributes"`
	Relationships ReportingExceptionRelationships `json:"relationships"`
}

// ReportingExceptionAttributes carries the exception category and reason,
// e.g. category "DIRECT_ACCOUNTING_CONSOLIDATION_PARENT", reason "NON_CONSOLIDATING".
type ReportingExceptionAttributes struct {
	ValidFrom *time.Time `json:"validFrom,omitempty"`
	ValidTo   *time.Time `json:"validTo,omitempty"`
	LEI       string     `json:"lei"`
	Category  string     `json:"category"`
	Reason    string     `json:"reason"`
	Reference string     `json:"reference,omitempty"`
}

// ReportingExceptionRelationships links back to the excepted LEI record.
type ReportingExceptionRelationships struct {
	LEIRecord RelationshipLinks `json:"lei-record"`
}
