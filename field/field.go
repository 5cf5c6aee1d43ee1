/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package field defines the closed sets of GLEIF API field names and enumerated
// field values, with bidirectional conversion between symbols and their
// canonical wire strings.
//
// Filtering and sorting against the API is done with raw strings on the wire.
// Using the enumerations instead of strings keeps queries within the set of
// names and values the API actually accepts and lets validation fail before a
// request is ever sent. Callers that must accept field names from user input
// can restrict parsing further with an allow-list (ParseWithAllowed).
package field

import (
	"errors"
	"fmt"
)

// Parse errors. Callers branch on these with errors.Is: an unknown name is a
// typo or schema drift, while a known-but-not-allowed name is a policy
// violation for the particular call site.
var (
	ErrUnknownField    = errors.New("unknown field name")
	ErrFieldNotAllowed = errors.New("field not allowed in this context")
	ErrUnknownValue    = errors.New("unknown field value")
	ErrValueNotAllowed = errors.New("field value not allowed in this context")
)

// Field is one of the GLEIF v1 API field names recognized for filtering and sorting.
type Field int

// Known GLEIF API fields.
const (
	// Core identifiers.
	LEI Field = iota
	BIC
	ISIN

	// Entity fields.
	EntityLegalName
	EntityOtherNames
	EntityLegalForm
	EntityLegalFormID
	EntityLegalFormCode
	EntityCategoryField
	EntityLegalAddressCountry
	EntityLegalAddressLine1
	EntityLegalAddressCity
	EntityLegalAddressPostalCode
	EntityHQAddressCountry
	EntityHQAddressLine1
	EntityHQAddressCity
	EntityHQAddressPostalCode
	EntityRegisteredAs
	EntityJurisdiction
	EntityStatus

	// Registration fields.
	RegistrationStatusField
	RegistrationInitialRegistrationDate
	RegistrationLastUpdateDate
	RegistrationNextRenewalDate
	RegistrationManagingLOU
	ConformityFlagField

	// Relationship (level 2) fields.
	Owns
	OwnedBy
	RelationshipStartDate
	RelationshipEndDate
	RelationshipStatus
	RelationshipType

	// Cross-field search.
	Fulltext
)

// fieldWireNames maps every Field to its canonical wire string.
// The table is the single source of truth for both directions.
var fieldWireNames = map[Field]string{
	LEI:  "lei",
	BIC:  "bic",
	ISIN: "isin",

	EntityLegalName:              "entity.legalName",
	EntityOtherNames:             "entity.otherNames",
	EntityLegalForm:              "entity.legalForm",
	EntityLegalFormID:            "entity.legalForm.id",
	EntityLegalFormCode:          "entity.legalForm.code",
	EntityCategoryField:          "entity.category",
	EntityLegalAddressCountry:    "entity.legalAddress.country",
	EntityLegalAddressLine1:      "entity.legalAddress.line1",
	EntityLegalAddressCity:       "entity.legalAddress.city",
	EntityLegalAddressPostalCode: "entity.legalAddress.postalCode",
	EntityHQAddressCountry:       "entity.headquartersAddress.country",
	EntityHQAddressLine1:         "entity.headquartersAddress.line1",
	EntityHQAddressCity:          "entity.headquartersAddress.city",
	EntityHQAddressPostalCode:    "entity.headquartersAddress.postalCode",
	EntityRegisteredAs:           "entity.registeredAs",
	EntityJurisdiction:           "entity.jurisdiction",
	EntityStatus:                 "entity.status",

	RegistrationStatusField:             "registration.status",
	RegistrationInitialRegistrationDate: "registration.initialRegistrationDate",
	RegistrationLastUpdateDate:          "registration.lastUpdateDate",
	RegistrationNextRenewalDate:         "registration.nextRenewalDate",
	RegistrationManagingLOU:             "registration.managingLou",
	ConformityFlagField:                 "conformity_flag",

	Owns:                  "owns",
	OwnedBy:               "ownedBy",
	RelationshipStartDate: "relationship.startDate",
	RelationshipEndDate:   "relationship.endDate",
	RelationshipStatus:    "relationship.status",
	RelationshipType:      "relationship.type",

	Fulltext: "fulltext",
}

var fieldsByWireName = func() map[string]Field {
	m := make(map[string]Field, len(fieldWireNames))
	for f, s := range fieldWireNames {
		m[s] = f
	}
	return m
}()

// String returns the canonical wire string for the field.
func (f Field) String() string {
	if s, ok := fieldWireNames[f]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// All returns every known field. The returned slice is a copy.
func All() []Field {
	fields := make([]Field, 0, len(fieldWireNames))
	for f := range fieldWireNames {
		fields = append(fields, f)
	}
	return fields
}

// AutoCompletionFields returns the fields the autocompletions endpoint accepts.
func AutoCompletionFields() []Field {
	return []Field{Fulltext, Owns, OwnedBy}
}

// FuzzyCompletionFields returns the fields the fuzzycompletions endpoint accepts.
func FuzzyCompletionFields() []Field {
	return []Field{EntityLegalName, Fulltext, Owns, OwnedBy}
}

// Parse converts a wire string to a Field.
// The error wraps ErrUnknownField when the string matches no known field.
func Parse(s string) (Field, error) {
	f, ok := fieldsByWireName[s]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownField)
	}
	return f, nil
}

// ParseWithAllowed converts a wire string to a Field, additionally requiring it
// to be a member of the allowed subset. A nil allowed slice permits every known
// field. The two failure modes are distinguishable: the returned error wraps
// ErrUnknownField for unrecognized strings and ErrFieldNotAllowed for
// recognized strings outside the subset.
func ParseWithAllowed(s string, allowed []Field) (Field, error) {
	f, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if allowed == nil {
		return f, nil
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrFieldNotAllowed)
}
