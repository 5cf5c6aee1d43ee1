/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package model

import "time"

// ISIN maps an International Securities Identification Number to its issuer LEI.
type ISIN struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes ISINAttributes `json:"attributes"`
}

// ISINAttributes holds the LEI to ISIN mapping.
type ISINAttributes struct {
	LEI  string `json:"lei"`
	ISIN string `json:"isin"`
}

// AutoCompletion is a single suggestion from the autocompletions endpoint.
// Highlighting wraps the matched fragment in <em> tags.
type AutoCompletion struct {
	Type       string                   `json:"type"`
	Attributes AutoCompletionAttributes `json:"attributes"`
}

// AutoCompletionAttributes carries the suggested value and its highlighted form.
type AutoCompletionAttributes struct {
	Value        string `json:"value"`
	Highlighting string `json:"highlighting"`
}

// FuzzyCompletion is a single suggestion from the fuzzycompletions endpoint.
type FuzzyCompletion struct {
	Type          string                        `json:"type"`
	Attributes    FuzzyCompletionAttributes     `json:"attributes"`
	Relationships *FuzzyCompletionRelationships `json:"relationships,omitempty"`
}

// FuzzyCompletionAttributes carries the matched value.
type FuzzyCompletionAttributes struct {
	Value string `json:"value"`
}

// FuzzyCompletionRelationships points at the LEI record behind a match.
type FuzzyCompletionRelationships struct {
	LEIRecords FuzzyCompletionLEIRecords `json:"lei-records"`
}

// FuzzyCompletionLEIRecords carries the matched record reference and link.
type FuzzyCompletionLEIRecords struct {
	Data  StartEndNode `json:"data"`
	Links RelatedLink  `json:"links"`
}

// FieldModification is one historical change to an LEI record field.
type FieldModification struct {
	Type       string                      `json:"type"`
	ID         string                      `json:"id"`
	Attributes FieldModificationAttributes `json:"attributes"`
}

// FieldModificationAttributes describes what changed and when.
type FieldModificationAttributes struct {
	LEI              string                    `json:"lei"`
	RecordType       string                    `json:"recordType"`
	ModificationType string                    `json:"modificationType"`
	Field            string                    `json:"field"`
	Date             time.Time                 `json:"date"`
	ValueOld         string                    `json:"valueOld,omitempty"`
	ValueNew         string                    `json:"valueNew"`
	Context          *FieldModificationContext `json:"context,omitempty"`
}

// FieldModificationContext narrows a modification to a relationship or exception.
type FieldModificationContext struct {
	RelationshipType  string `json:"relationshipType,omitempty"`
	EndNode           string `json:"endNode,omitempty"`
	ExceptionCategory string `json:"exceptionCategory,omitempty"`
}

// MetadataField describes one filterable or sortable field exposed by the API.
type MetadataField struct {
	Type       string                  `json:"type"`
	ID         string                  `json:"id"`
	Attributes MetadataFieldAttributes `json:"attributes"`
}

// MetadataFieldAttributes carries the field metadata.
type MetadataFieldAttributes struct {
	Field      string   `json:"field"`
	Label      string   `json:"label"`
	DataType   string   `json:"dataType"`
	EnumValues []string `json:"enumValues,omitempty"`
	Resource   string   `json:"resource,omitempty"`
	Sortable   bool     `json:"sortable"`
	Operators  []string `json:"operators,omitempty"`
	Contexts   []string `json:"contexts"`
	JSONPath   string   `json:"jsonPath,omitempty"`
	XPath      string   `json:"xpath,omitempty"`
}
