/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package jsonapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testResource struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func TestOneOrManyUnmarshalSingleObject(t *testing.T) {
	var doc Document[testResource]
	body := `{"data": {"type": "lei-records", "id": "5493000IBP32UQZ0KL24"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	require.False(t, doc.Data.IsMany())
	one, ok := doc.Data.One()
	require.True(t, ok)
	require.Equal(t, testResource{Type: "lei-records", ID: "5493000IBP32UQZ0KL24"}, one)

	_, ok = doc.Data.Many()
	require.False(t, ok)
}

func TestOneOrManyUnmarshalArray(t *testing.T) {
	var doc Document[testResource]
	body := `{"data": [{"type": "countries", "id": "US"}, {"type": "countries", "id": "DE"}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	require.True(t, doc.Data.IsMany())
	many, ok := doc.Data.Many()
	require.True(t, ok)
	require.Len(t, many, 2)
	require.Equal(t, "US", many[0].ID)
	require.Equal(t, "DE", many[1].ID)

	_, ok = doc.Data.One()
	require.False(t, ok)
}

func TestOneOrManyUnmarshalEmptyArray(t *testing.T) {
	var doc Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": []}`), &doc))

	// An empty array is still the multiple variant, not an absent single one.
	require.True(t, doc.Data.IsMany())
	many, ok := doc.Data.Many()
	require.True(t, ok)
	require.Empty(t, many)
}

func TestOneOrManyUnmarshalInvalidKinds(t *testing.T) {
	tests := []struct {
		Name     string
		Body     string
		WantKind string
	}{
		{Name: "string", Body: `{"data": "nope"}`, WantKind: "string"},
		{Name: "number", Body: `{"data": 42}`, WantKind: "number"},
		{Name: "null", Body: `{"data": null}`, WantKind: "null"},
		{Name: "boolean", Body: `{"data": true}`, WantKind: "boolean"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			var doc Document[testResource]
			err := json.Unmarshal([]byte(tt.Body), &doc)
			require.Error(t, err)
			var dtErr *DataTypeError
			require.ErrorAs(t, err, &dtErr)
			require.Equal(t, tt.WantKind, dtErr.Kind)
		})
	}
}

func TestOneOrManyNoCoercion(t *testing.T) {
	var single Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": {"type": "t", "id": "1"}}`), &single))
	var oneElem Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": [{"type": "t", "id": "1"}]}`), &oneElem))

	require.False(t, single.Data.IsMany())
	require.True(t, oneElem.Data.IsMany())
}

func TestOneOrManyMarshalRoundTrip(t *testing.T) {
	one := One(testResource{Type: "t", ID: "1"})
	b, err := json.Marshal(one)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"t","id":"1"}`, string(b))

	many := Many([]testResource{{Type: "t", ID: "1"}})
	b, err = json.Marshal(many)
	require.NoError(t, err)
	require.JSONEq(t, `[{"type":"t","id":"1"}]`, string(b))

	empty := Many[testResource](nil)
	b, err = json.Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, "[]", string(b))
}

func TestDocumentMetaAndLinks(t *testing.T) {
	body := `{
		"meta": {
			"goldenCopy": {"publishDate": "2023-01-01T00:00:00Z"},
			"pagination": {"currentPage": 1, "perPage": 10, "from": 1, "to": 10, "total": 100, "lastPage": 10}
		},
		"links": {
			"first": "https://api.gleif.org/api/v1/lei-records?page%5Bnumber%5D=1",
			"next": "https://api.gleif.org/api/v1/lei-records?page%5Bnumber%5D=2",
			"last": "https://api.gleif.org/api/v1/lei-records?page%5Bnumber%5D=10"
		},
		"data": []
	}`
	var doc Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	require.NotNil(t, doc.Meta)
	require.NotNil(t, doc.Meta.GoldenCopy)
	require.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), doc.Meta.GoldenCopy.PublishDate)
	require.NotNil(t, doc.Meta.Pagination)
	require.Equal(t, 1, doc.Meta.Pagination.CurrentPage)
	require.Equal(t, 100, doc.Meta.Pagination.Total)
	require.Equal(t, 10, doc.Meta.Pagination.LastPage)

	require.NotNil(t, doc.Links)
	require.NotEmpty(t, doc.Links.First)
	require.Empty(t, doc.Links.Prev)
	require.NotEmpty(t, doc.Links.Next)
}

func TestDocumentWithoutMeta(t *testing.T) {
	var doc Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": {"type": "t", "id": "1"}}`), &doc))
	require.Nil(t, doc.Meta)
	require.Nil(t, doc.Links)
	require.True(t, doc.Data.Present())
}

func TestDocumentMissingData(t *testing.T) {
	var doc Document[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"meta": {}}`), &doc))
	require.False(t, doc.Data.Present())
	_, ok := doc.Data.One()
	require.False(t, ok)
	_, ok = doc.Data.Many()
	require.False(t, ok)
}

func TestResourceDocuments(t *testing.T) {
	var single ResourceDocument[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": {"type": "t", "id": "1"}}`), &single))
	require.Equal(t, "1", single.Data.ID)

	var list ResourceListDocument[testResource]
	require.NoError(t, json.Unmarshal([]byte(`{"data": [{"type": "t", "id": "1"}, {"type": "t", "id": "2"}]}`), &list))
	require.Len(t, list.Data, 2)
}
