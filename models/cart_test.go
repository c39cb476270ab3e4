package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCartDocumentNilItems(t *testing.T) {
	data, err := EncodeCartDocument(nil)
	require.NoError(t, err)

	var doc CartDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, CartSchemaVersion, doc.Version)
	assert.NotNil(t, doc.Items)
	assert.Empty(t, doc.Items)
}

func TestCartDocumentRoundTrip(t *testing.T) {
	items := []CartLine{
		{PerfumeID: "1", Name: "Oud Al Layl", Brand: "Lattafa", Category: "Árabe", Price: 45000, InStock: true, Quantity: 2},
		{PerfumeID: "2", Name: "Aventus", Brand: "Creed", Category: "Nicho", Price: 120000, InStock: false, Quantity: 1},
	}

	data, err := EncodeCartDocument(items)
	require.NoError(t, err)

	decoded, err := DecodeCartDocument(data)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestDecodeCartDocumentRejectsGarbage(t *testing.T) {
	_, err := DecodeCartDocument([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undecodable cart document")
}

func TestDecodeCartDocumentRejectsUnknownVersion(t *testing.T) {
	_, err := DecodeCartDocument([]byte(`{"version":99,"items":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cart schema version 99")
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		45000:   "45.000",
		121000:  "121.000",
		1234567: "1.234.567",
	}

	for amount, want := range cases {
		assert.Equal(t, want, FormatPrice(amount), "amount %d", amount)
	}
}
