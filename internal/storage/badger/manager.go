package badger

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db        *BadgerDB
	documents interfaces.DocumentStore
	logger    arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:        db,
		documents: NewDocumentStore(db, logger),
		logger:    logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// DocumentStore returns the document store
func (m *Manager) DocumentStore() interfaces.DocumentStore {
	return m.documents
}

// LoadDocumentsFromFiles seeds collection from files in dirPath
func (m *Manager) LoadDocumentsFromFiles(ctx context.Context, dirPath, collection string) (int, error) {
	return LoadDocumentsFromFiles(ctx, m.documents, dirPath, collection, m.logger)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
