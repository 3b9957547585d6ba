package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// DocumentStore implements interfaces.DocumentStore for Badger.
// Each document is stored as its JSON body, indexed by collection.
type DocumentStore struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDocumentStore creates a new DocumentStore instance
func NewDocumentStore(db *BadgerDB, logger arbor.ILogger) interfaces.DocumentStore {
	return &DocumentStore{
		db:     db,
		logger: logger,
	}
}

func (s *DocumentStore) SaveDocument(ctx context.Context, collection, key string, doc models.RawDocument) error {
	if collection == "" || key == "" {
		return fmt.Errorf("collection and key are required")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}

	stored := &models.StoredDocument{
		ID:         models.StoredDocumentID(collection, key),
		Collection: collection,
		Key:        key,
		Body:       body,
		UpdatedAt:  time.Now(),
	}

	if err := s.db.Store().Upsert(stored.ID, stored); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *DocumentStore) FetchOne(ctx context.Context, collection, key string) (models.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stored models.StoredDocument
	if err := s.db.Store().Get(models.StoredDocumentID(collection, key), &stored); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, interfaces.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc, err := decodeBody(stored.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", stored.ID, err)
	}
	return doc, nil
}

func (s *DocumentStore) FetchMany(ctx context.Context, collection string, limit int) ([]models.KeyedDocument, error) {
	query := badgerhold.Where("Collection").Eq(collection).Index("Collection").SortBy("Key")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return s.find(ctx, collection, query)
}

func (s *DocumentStore) FetchAll(ctx context.Context, collection string) ([]models.KeyedDocument, error) {
	query := badgerhold.Where("Collection").Eq(collection).Index("Collection").SortBy("Key")
	return s.find(ctx, collection, query)
}

func (s *DocumentStore) Count(ctx context.Context, collection string) (int, error) {
	count, err := s.db.Store().Count(&models.StoredDocument{}, badgerhold.Where("Collection").Eq(collection).Index("Collection"))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(count), nil
}

// find runs the query and decodes each body. Bodies that fail to decode are
// skipped so one bad document does not fail the whole fetch.
func (s *DocumentStore) find(ctx context.Context, collection string, query *badgerhold.Query) ([]models.KeyedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stored []models.StoredDocument
	if err := s.db.Store().Find(&stored, query); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]models.KeyedDocument, 0, len(stored))
	for _, item := range stored {
		doc, err := decodeBody(item.Body)
		if err != nil {
			s.logger.Warn().Err(err).Str("collection", collection).Str("key", item.Key).Msg("Skipping undecodable document")
			continue
		}
		docs = append(docs, models.KeyedDocument{Key: item.Key, Data: doc})
	}
	return docs, nil
}

func decodeBody(body []byte) (models.RawDocument, error) {
	var doc models.RawDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.RawDocument{}
	}
	return doc, nil
}
