// -----------------------------------------------------------------------
// Last Modified: Wednesday, 5th November 2025 8:17:54 pm
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/handlers"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/metrics"
	"github.com/ternarybob/pricedash/internal/services/skus"
	"github.com/ternarybob/pricedash/internal/storage"
)

// warmupTimeout bounds the initial catalog load at startup
const warmupTimeout = 10 * time.Second

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager
	Metrics        *metrics.Registry

	// SKU pricing service
	SkuService *skus.Service

	// HTTP handlers
	APIHandler   *handlers.APIHandler
	SkuHandler   *handlers.SkuHandler
	PageHandler  *handlers.PageHandler
	DebugHandler *handlers.DebugHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewRegistry(),
	}

	// Initialize database
	if err := app.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize services
	if err := app.initServices(); err != nil {
		app.StorageManager.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Initialize handlers
	app.initHandlers()

	app.warmCatalog()

	logger.Info().
		Str("collection", cfg.Dashboard.Collection).
		Str("refresh_interval", cfg.Dashboard.RefreshInterval).
		Bool("debug_routes", !cfg.IsProduction()).
		Msg("Application initialization complete")

	return app, nil
}

// initDatabase initializes the storage layer (Badger) and imports seed documents
func (a *App) initDatabase() error {
	storageManager, err := storage.NewStorageManager(a.Logger, a.Config)
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	a.StorageManager = storageManager
	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Bool("in_memory", a.Config.Storage.Badger.InMemory).
		Msg("Storage layer initialized")

	// Seed documents are optional; a bad seed directory never blocks startup
	loaded, err := a.StorageManager.LoadDocumentsFromFiles(context.Background(), a.Config.Dashboard.SeedDir, a.Config.Dashboard.Collection)
	if err != nil {
		a.Logger.Warn().Err(err).Str("dir", a.Config.Dashboard.SeedDir).Msg("Failed to load seed documents")
	} else if loaded > 0 {
		a.Logger.Info().
			Int("documents", loaded).
			Str("collection", a.Config.Dashboard.Collection).
			Msg("Seed documents loaded")
	}

	return nil
}

// initServices creates the SKU service over the document store
func (a *App) initServices() error {
	service, err := skus.NewService(a.StorageManager.DocumentStore(), a.Config.Dashboard, a.Metrics, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create sku service: %w", err)
	}
	a.SkuService = service
	return nil
}

// initHandlers creates the HTTP handlers
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler(a.Logger)
	a.SkuHandler = handlers.NewSkuHandler(a.SkuService, a.Config.Dashboard, a.Logger)
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.SkuService, a.Config.Dashboard)

	if !a.Config.IsProduction() {
		a.DebugHandler = handlers.NewDebugHandler(a.StorageManager.DocumentStore(), a.Config.Dashboard.Collection, a.Logger)
	}
}

// warmCatalog loads the dashboard list once so the first page view is served from memory.
// A failure is logged and the next request retries.
func (a *App) warmCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	records, err := a.SkuService.Catalog().Refresh(ctx)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("Initial catalog load failed")
		return
	}
	a.Logger.Debug().Int("records", len(records)).Msg("Catalog warmed")
}

// Close closes all application resources
func (a *App) Close() error {
	if a.SkuService != nil {
		a.SkuService.Close()
	}

	// Close storage
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}
