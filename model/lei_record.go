/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package model

import (
	"time"

	"github.com/acronis/go-gleif/field"
)

// LEIRecord is a single LEI record resource.
type LEIRecord struct {
	Type          string                 `json:"type"`
	ID            string                 `json:"id"`
	Attributes    LEIRecordAttributes    `json:"attributes"`
	Relationships LEIRecordRelationships `json:"relationships"`
}

// LEIRecordAttributes carries the reference data of an LEI record.
type LEIRecordAttributes struct {
	LEI            string                `json:"lei"`
	Entity         Entity                `json:"entity"`
	Registration   Registration          `json:"registration"`
	BIC            []string              `json:"bic,omitempty"`
	MIC            []string              `json:"mic,omitempty"`
	OCID           string                `json:"ocid,omitempty"`
	QCC            string                `json:"qcc,omitempty"`
	SPGlobal       []string              `json:"spglobal,omitempty"`
	ConformityFlag *field.ConformityFlag `json:"conformityFlag,omitempty"`
}

// Entity describes the legal entity identified by an LEI.
type Entity struct {
	LegalName                    Name                  `json:"legalName"`
	OtherNames                   []OtherName           `json:"otherNames"`
	TransliteratedOtherNames     []TransliteratedName  `json:"transliteratedOtherNames"`
	LegalAddress                 Address               `json:"legalAddress"`
	HeadquartersAddress          Address               `json:"headquartersAddress"`
	OtherAddresses               []OtherAddress        `json:"otherAddresses"`
	TransliteratedOtherAddresses []OtherAddress        `json:"transliteratedOtherAddresses,omitempty"`
	RegisteredAt                 EntityAuthority       `json:"registeredAt"`
	RegisteredAs                 string                `json:"registeredAs,omitempty"`
	Jurisdiction                 string                `json:"jurisdiction"`
	Category                     field.EntityCategory  `json:"category"`
	SubCategory                  string                `json:"subCategory,omitempty"`
	LegalForm                    LegalForm             `json:"legalForm"`
	AssociatedEntity             AssociatedEntity      `json:"associatedEntity"`
	Status                       string                `json:"status"`
	CreationDate                 *time.Time            `json:"creationDate,omitempty"`
	Expiration                   Expiration            `json:"expiration"`
	SuccessorEntity              SuccessorEntity       `json:"successorEntity"`
	SuccessorEntities            []SuccessorEntity     `json:"successorEntities"`
	EventGroups                  []EventGroup          `json:"eventGroups"`
}

// Name is an entity name with an optional BCP 47 language tag.
type Name struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// OtherName is an alternative entity name with its kind, e.g. "TRADING_OR_OPERATING_NAME".
type OtherName struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Type     string `json:"type"`
}

// TransliteratedName is a Romanized representation of an entity name.
type TransliteratedName struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Type     string `json:"type"`
}

// Address is a structured postal address.
type Address struct {
	Language                    string   `json:"language,omitempty"`
	AddressLines                []string `json:"addressLines"`
	AddressNumber               string   `json:"addressNumber,omitempty"`
	AddressNumberWithinBuilding string   `json:"addressNumberWithinBuilding,omitempty"`
	MailRouting                 string   `json:"mailRouting,omitempty"`
	AdditionalAddressLine       []string `json:"additionalAddressLine,omitempty"`
	City                        string   `json:"city"`
	Region                      string   `json:"region,omitempty"`
	Country                     string   `json:"country"`
	PostalCode                  string   `json:"postalCode,omitempty"`
}

// OtherAddress is an additional address with its type, e.g. "ALTERNATIVE_LANGUAGE_LEGAL_ADDRESS".
type OtherAddress struct {
	FieldType                   string   `json:"fieldType,omitempty"`
	Language                    string   `json:"language,omitempty"`
	AddressLines                []string `json:"addressLines"`
	AddressNumber               string   `json:"addressNumber,omitempty"`
	AddressNumberWithinBuilding string   `json:"addressNumberWithinBuilding,omitempty"`
	MailRouting                 string   `json:"mailRouting,omitempty"`
	AdditionalAddressLine       []string `json:"additionalAddressLine,omitempty"`
	City                        string   `json:"city"`
	Region                      string   `json:"region,omitempty"`
	Country                     string   `json:"country"`
	PostalCode                  string   `json:"postalCode,omitempty"`
	Type                        string   `json:"type"`
}

// EntityAuthority identifies an entity at a registration authority from the GLEIF RA list.
type EntityAuthority struct {
	ID       string `json:"id"`
	Other    string `json:"other,omitempty"`
	EntityID string `json:"entityID,omitempty"`
}

// LegalForm references an ISO 20275 entity legal form code.
type LegalForm struct {
	ID    string `json:"id"`
	Other string `json:"other,omitempty"`
}

// AssociatedEntity links another entity needed to place this one in context.
type AssociatedEntity struct {
	LEI  string `json:"lei,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Expiration records when and why an entity ceased to operate.
type Expiration struct {
	Date   *time.Time `json:"date,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// SuccessorEntity names an entity that continues or replaces this LEI.
type SuccessorEntity struct {
	LEI  string `json:"lei,omitempty"`
	Name string `json:"name,omitempty"`
}

// EventGroup bundles legal entity events that belong together.
type EventGroup struct {
	GroupType string  `json:"groupType"`
	Events    []Event `json:"events"`
}

// Event is a single legal entity event affecting the reference data.
type Event struct {
	Type                string          `json:"type"`
	EffectiveDate       time.Time       `json:"effectiveDate"`
	RecordedDate        time.Time       `json:"recordedDate"`
	ValidationDocuments string          `json:"validationDocuments"`
	ValidationReference string          `json:"validationReference,omitempty"`
	AffectedFields      []AffectedField `json:"affectedFields,omitempty"`
	Status              string          `json:"status"`
}

// AffectedField names a record element expected to change as a result of an event.
type AffectedField struct {
	Value string `json:"value"`
	XPath string `json:"xpath"`
}

// Registration holds the registration of an LEI with its managing LOU.
type Registration struct {
	InitialRegistrationDate    time.Time                  `json:"initialRegistrationDate"`
	LastUpdateDate             time.Time                  `json:"lastUpdateDate"`
	Status                     field.RegistrationStatus   `json:"status"`
	NextRenewalDate            time.Time                  `json:"nextRenewalDate"`
	ManagingLOU                string                     `json:"managingLou"`
	CorroborationLevel         string                     `json:"corroborationLevel"`
	ValidatedAt                ValidationAuthority        `json:"validatedAt"`
	ValidatedAs                string                     `json:"validatedAs,omitempty"`
	OtherValidationAuthorities []OtherValidationAuthority `json:"otherValidationAuthorities"`
}

// ValidationAuthority references the registration authority used to validate entity data.
type ValidationAuthority struct {
	ID    string `json:"id"`
	Other string `json:"other,omitempty"`
}

// OtherValidationAuthority is an additional authority used during validation.
type OtherValidationAuthority struct {
	ValidatedAt ValidationAuthority `json:"validatedAt"`
	ValidatedAs string              `json:"validatedAs"`
}

// LEIRecordRelationships lists the related resources an LEI record links to.
// Member names are kebab-case on the wire.
type LEIRecordRelationships struct {
	ManagingLOU        RelationshipLinks  `json:"managing-lou"`
	LEIIssuer          RelationshipLinks  `json:"lei-issuer"`
	FieldModifications RelationshipLinks  `json:"field-modifications"`
	DirectParent       *RelationshipLinks `json:"direct-parent,omitempty"`
	UltimateParent     *RelationshipLinks `json:"ultimate-parent,omitempty"`
	HeadOffice         *RelationshipLinks `json:"head-office,omitempty"`
	DirectChildren     *RelationshipLinks `json:"direct-children,omitempty"`
	UltimateChildren   *RelationshipLinks `json:"ultimate-children,omitempty"`
	SuccessorEntity    *RelationshipLinks `json:"successor-entity,omitempty"`
	SuccessorEntities  *RelationshipLinks `json:"successor-entities,omitempty"`
	ISINs              *RelationshipLinks `json:"isins,omitempty"`
	FundManager        *RelationshipLinks `json:"fund-manager,omitempty"`
	UmbrellaFund       *RelationshipLinks `json:"umbrella-fund,omitempty"`
	MasterFund         *RelationshipLinks `json:"master-fund,omitempty"`
	AssociatedEntity   *RelationshipLinks `json:"associated-entity,omitempty"`
}
