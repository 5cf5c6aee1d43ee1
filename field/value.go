/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package field

import (
	"encoding/json"
	"fmt"
)

// EntityCategory is the closed set of accepted entity.category values.
type EntityCategory int

// Entity categories.
const (
	CategoryGeneral EntityCategory = iota
	CategoryBranch
	CategoryFund
	CategorySoleProprietor
	CategoryResidentGovernmentEntity
	CategoryInternationalOrganization
)

var entityCategoryWireNames = map[EntityCategory]string{
	CategoryGeneral:                   "GENERAL",
	CategoryBranch:                    "BRANCH",
	CategoryFund:                      "FUND",
	CategorySoleProprietor:            "SOLE_PROPRIETOR",
	CategoryResidentGovernmentEntity:  "RESIDENT_GOVERNMENT_ENTITY",
	CategoryInternationalOrganization: "INTERNATIONAL_ORGANIZATION",
}

var entityCategoriesByWireName = invertWireNames(entityCategoryWireNames)

// String returns the canonical wire string for the category.
func (c EntityCategory) String() string {
	if s, ok := entityCategoryWireNames[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// MarshalJSON serializes the category as its wire string.
func (c EntityCategory) MarshalJSON() ([]byte, error) {
	s, ok := entityCategoryWireNames[c]
	if !ok {
		return nil, fmt.Errorf("marshal entity category: %w", ErrUnknownValue)
	}
	return json.Marshal(s)
}

// UnmarshalJSON deserializes the category from its wire string,
// rejecting values outside the known set.
func (c *EntityCategory) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseEntityCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseEntityCategory converts a wire string to an EntityCategory.
func ParseEntityCategory(s string) (EntityCategory, error) {
	c, ok := entityCategoriesByWireName[s]
	if !ok {
		return 0, fmt.Errorf("entity category %q: %w", s, ErrUnknownValue)
	}
	return c, nil
}

// ParseEntityCategoryWithAllowed converts a wire string to an EntityCategory
// restricted to the allowed subset; nil permits every known category.
func ParseEntityCategoryWithAllowed(s string, allowed []EntityCategory) (EntityCategory, error) {
	c, err := ParseEntityCategory(s)
	if err != nil {
		return 0, err
	}
	if !valueAllowed(c, allowed) {
		return 0, fmt.Errorf("entity category %q: %w", s, ErrValueNotAllowed)
	}
	return c, nil
}

// RegistrationStatus is the closed set of accepted registration.status values.
type RegistrationStatus int

// Registration statuses.
const (
	StatusPendingValidation RegistrationStatus = iota
	StatusIssued
	StatusDuplicate
	StatusLapsed
	StatusMerged
	StatusRetired
	StatusAnnulled
	StatusCancelled
	StatusTransferred
	StatusPendingTransfer
	StatusPendingArchival
	StatusPublished
)

var registrationStatusWireNames = map[RegistrationStatus]string{
	StatusPendingValidation: "PENDING_VALIDATION",
	StatusIssued:            "ISSUED",
	StatusDuplicate:         "DUPLICATE",
	StatusLapsed:            "LAPSED",
	StatusMerged:            "MERGED",
	StatusRetired:           "RETIRED",
	StatusAnnulled:          "ANNULLED",
	StatusCancelled:         "CANCELLED",
	StatusTransferred:       "TRANSFERRED",
	StatusPendingTransfer:   "PENDING_TRANSFER",
	StatusPendingArchival:   "PENDING_ARCHIVAL",
	StatusPublished:         "PUBLISHED",
}

var registrationStatusesByWireName = invertWireNames(registrationStatusWireNames)

// String returns the canonical wire string for the status.
func (s RegistrationStatus) String() string {
	if str, ok := registrationStatusWireNames[s]; ok {
		return str
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// MarshalJSON serializes the status as its wire string.
func (s RegistrationStatus) MarshalJSON() ([]byte, error) {
	str, ok := registrationStatusWireNames[s]
	if !ok {
		return nil, fmt.Errorf("marshal registration status: %w", ErrUnknownValue)
	}
	return json.Marshal(str)
}

// UnmarshalJSON deserializes the status from its wire string,
// rejecting values outside the known set.
func (s *RegistrationStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseRegistrationStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseRegistrationStatus converts a wire string to a RegistrationStatus.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	st, ok := registrationStatusesByWireName[s]
	if !ok {
		return 0, fmt.Errorf("registration status %q: %w", s, ErrUnknownValue)
	}
	return st, nil
}

// ParseRegistrationStatusWithAllowed converts a wire string to a
// RegistrationStatus restricted to the allowed subset; nil permits every
// known status.
func ParseRegistrationStatusWithAllowed(s string, allowed []RegistrationStatus) (RegistrationStatus, error) {
	st, err := ParseRegistrationStatus(s)
	if err != nil {
		return 0, err
	}
	if !valueAllowed(st, allowed) {
		return 0, fmt.Errorf("registration status %q: %w", s, ErrValueNotAllowed)
	}
	return st, nil
}

// ConformityFlag is the closed set of accepted conformity_flag values.
type ConformityFlag int

// Conformity flags.
const (
	Conforming ConformityFlag = iota
	NonConforming
	NotApplicable
)

var conformityFlagWireNames = map[ConformityFlag]string{
	Conforming:    "CONFORMING",
	NonConforming: "NON_CONFORMING",
	NotApplicable: "NOT_APPLICABLE",
}

var conformityFlagsByWireName = invertWireNames(conformityFlagWireNames)

// String returns the canonical wire string for the flag.
func (f ConformityFlag) String() string {
	if s, ok := conformityFlagWireNames[f]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// MarshalJSON serializes the flag as its wire string.
func (f ConformityFlag) MarshalJSON() ([]byte, error) {
	s, ok := conformityFlagWireNames[f]
	if !ok {
		return nil, fmt.Errorf("marshal conformity flag: %w", ErrUnknownValue)
	}
	return json.Marshal(s)
}

// UnmarshalJSON deserializes the flag from its wire string,
// rejecting values outside the known set.
func (f *ConformityFlag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseConformityFlag(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseConformityFlag converts a wire string to a ConformityFlag.
func ParseConformityFlag(s string) (ConformityFlag, error) {
	f, ok := conformityFlagsByWireName[s]
	if !ok {
		return 0, fmt.Errorf("conformity flag %q: %w", s, ErrUnknownValue)
	}
	return f, nil
}

func invertWireNames[T comparable](in map[T]string) map[string]T {
	out := make(map[string]T, len(in))
	for v, s := range in {
		out[s] = v
	}
	return out
}

func valueAllowed[T comparable](v T, allowed []T) bool {
	if allowed == nil {
		return true
	}
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
