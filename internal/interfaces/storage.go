// -----------------------------------------------------------------------
// Last Modified: Thursday, 15th October 2026 9:41:07 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/pricedash/internal/models"
)

var (
	// ErrDocumentNotFound is returned by FetchOne when no document has the key
	ErrDocumentNotFound = errors.New("document not found")
)

// DocumentStore - read access to keyed, schemaless documents grouped in collections.
// Documents come back as decoded JSON objects; no schema is enforced.
type DocumentStore interface {
	// FetchMany returns up to limit documents of a collection ordered by key
	FetchMany(ctx context.Context, collection string, limit int) ([]models.KeyedDocument, error)

	// FetchOne returns a single document, or ErrDocumentNotFound
	FetchOne(ctx context.Context, collection, key string) (models.RawDocument, error)

	// FetchAll returns every document of a collection ordered by key
	FetchAll(ctx context.Context, collection string) ([]models.KeyedDocument, error)

	// SaveDocument inserts or replaces a document
	SaveDocument(ctx context.Context, collection, key string, doc models.RawDocument) error

	// Count returns the number of documents in a collection
	Count(ctx context.Context, collection string) (int, error)
}

// StorageManager - owns the database connection and the stores built on it
type StorageManager interface {
	DocumentStore() DocumentStore
	LoadDocumentsFromFiles(ctx context.Context, dirPath, collection string) (int, error)
	Close() error
}
