package models

import (
	"time"
)

// RawDocument is a document as it arrives from the document store: loosely
// typed values keyed by the upstream naming convention (ProductCode,
// Description1, WarehouseCode, Computed_Price, ...).
type RawDocument map[string]interface{}

// KeyedDocument pairs a raw document with its document key ("<code>-<warehouse>").
type KeyedDocument struct {
	Key  string      `json:"id"`
	Data RawDocument `json:"data"`
}

// StoredDocument is the persisted envelope of a raw document
type StoredDocument struct {
	ID         string    `json:"id" badgerhold:"key"` // <collection>/<key>
	Collection string    `json:"collection" badgerholdIndex:"Collection"`
	Key        string    `json:"key"`
	Body       []byte    `json:"body"` // JSON encoded RawDocument
	UpdatedAt  time.Time `json:"updated_at"`
}

// StoredDocumentID builds the storage id for a document key within a collection
func StoredDocumentID(collection, key string) string {
	return collection + "/" + key
}
