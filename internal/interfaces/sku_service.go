package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/pricedash/internal/models"
)

var (
	// ErrSkuNotFound is returned when neither a SKU key nor its alternate warehouse key exists
	ErrSkuNotFound = errors.New("SKU not found")

	// ErrFetchFailed wraps any failure of the underlying document store
	ErrFetchFailed = errors.New("fetch failed")
)

// SkuService - read-only access to normalized SKU pricing records
type SkuService interface {
	// ListSkus returns the bounded dashboard list, normalized
	ListSkus(ctx context.Context) ([]models.SkuRecord, error)

	// GetSku resolves a SKU id, falling back from the fresh warehouse key to the frozen one
	GetSku(ctx context.Context, id string) (*models.SkuRecord, error)

	// SearchSkus scans the full collection for a text term
	SearchSkus(ctx context.Context, term string) ([]models.SkuRecord, error)

	// Query runs the dashboard list request through the query engine
	Query(ctx context.Context, req models.ListRequest) (*models.ListResponse, error)
}
