// Package skus serves normalized SKU pricing records from the document store.
package skus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/metrics"
	"github.com/ternarybob/pricedash/internal/models"
	"github.com/ternarybob/pricedash/internal/pricing"
	"github.com/ternarybob/pricedash/internal/query"
)

// Warehouse key suffixes. A SKU id is "<productCode>-<warehouseCode>".
const (
	freshSuffix  = "-1"
	frozenSuffix = "-2"
)

// Store operation labels
const (
	opFetchMany = "fetch_many"
	opFetchOne  = "fetch_one"
	opFetchAll  = "fetch_all"
)

var _ interfaces.SkuService = (*Service)(nil)

// Service implements interfaces.SkuService over a document store
type Service struct {
	store    interfaces.DocumentStore
	config   common.DashboardConfig
	catalog  *Catalog
	details  *ristretto.Cache[string, models.SkuRecord]
	cacheTTL time.Duration
	metrics  *metrics.Registry
	logger   arbor.ILogger
}

// NewService creates the SKU service. Detail lookups are cached for the
// dashboard refresh interval; a zero interval disables the cache.
func NewService(store interfaces.DocumentStore, config common.DashboardConfig, registry *metrics.Registry, logger arbor.ILogger) (*Service, error) {
	interval, err := config.RefreshDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	details, err := ristretto.NewCache(&ristretto.Config[string, models.SkuRecord]{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create detail cache: %w", err)
	}

	s := &Service{
		store:    store,
		config:   config,
		details:  details,
		cacheTTL: interval,
		metrics:  registry,
		logger:   logger,
	}
	s.catalog = NewCatalog(s.ListSkus, interval, registry, logger)

	return s, nil
}

// Catalog returns the in-memory record list used for unfiltered queries
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Close releases the detail cache
func (s *Service) Close() {
	s.details.Close()
}

// ListSkus fetches the bounded dashboard list and normalizes every document
func (s *Service) ListSkus(ctx context.Context) ([]models.SkuRecord, error) {
	docs, err := s.store.FetchMany(ctx, s.config.Collection, s.config.ListLimit)
	if err != nil {
		s.metrics.RecordFetch(opFetchMany, metrics.OutcomeError)
		s.logger.Error().Err(err).Str("collection", s.config.Collection).Msg("Failed to fetch SKU list")
		return nil, fmt.Errorf("%w: %w", interfaces.ErrFetchFailed, err)
	}
	s.metrics.RecordFetch(opFetchMany, metrics.OutcomeOK)

	return pricing.NormalizeAll(docs), nil
}

// GetSku resolves id to a record. An id without a warehouse suffix is read as
// the fresh warehouse key; a missing fresh key is retried once as the frozen key.
func (s *Service) GetSku(ctx context.Context, id string) (*models.SkuRecord, error) {
	key := DetailKey(id)

	if record, ok := s.details.Get(key); ok {
		s.metrics.RecordCacheLookup(true)
		return &record, nil
	}
	s.metrics.RecordCacheLookup(false)

	raw, foundKey, err := s.fetchWithFallback(ctx, key)
	if err != nil {
		return nil, err
	}

	record := pricing.Normalize(raw, foundKey)
	if s.cacheTTL > 0 {
		s.details.SetWithTTL(key, record, 1, s.cacheTTL)
	}

	return &record, nil
}

func (s *Service) fetchWithFallback(ctx context.Context, key string) (models.RawDocument, string, error) {
	raw, err := s.fetchOne(ctx, key)
	if err == nil {
		return raw, key, nil
	}
	if !errors.Is(err, interfaces.ErrSkuNotFound) || !strings.HasSuffix(key, freshSuffix) {
		return nil, "", err
	}

	alternate := AlternateKey(key)
	s.logger.Debug().Str("key", key).Str("alternate", alternate).Msg("SKU not found, trying frozen warehouse")

	raw, err = s.fetchOne(ctx, alternate)
	if err != nil {
		return nil, "", err
	}
	return raw, alternate, nil
}

func (s *Service) fetchOne(ctx context.Context, key string) (models.RawDocument, error) {
	raw, err := s.store.FetchOne(ctx, s.config.Collection, key)
	switch {
	case err == nil:
		s.metrics.RecordFetch(opFetchOne, metrics.OutcomeOK)
		return raw, nil
	case errors.Is(err, interfaces.ErrDocumentNotFound):
		s.metrics.RecordFetch(opFetchOne, metrics.OutcomeNotFound)
		return nil, interfaces.ErrSkuNotFound
	default:
		s.metrics.RecordFetch(opFetchOne, metrics.OutcomeError)
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to fetch SKU")
		return nil, fmt.Errorf("%w: %w", interfaces.ErrFetchFailed, err)
	}
}

// SearchSkus scans the whole collection for term. Terms shorter than the
// minimum query length return nothing without touching the store.
func (s *Service) SearchSkus(ctx context.Context, term string) ([]models.SkuRecord, error) {
	if !query.IsTextQuery(term) {
		return []models.SkuRecord{}, nil
	}

	docs, err := s.store.FetchAll(ctx, s.config.Collection)
	if err != nil {
		s.metrics.RecordFetch(opFetchAll, metrics.OutcomeError)
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search SKUs")
		return nil, fmt.Errorf("%w: %w", interfaces.ErrFetchFailed, err)
	}
	s.metrics.RecordFetch(opFetchAll, metrics.OutcomeOK)

	results := make([]models.SkuRecord, 0)
	for _, doc := range docs {
		record := pricing.Normalize(doc.Data, doc.Key)
		if query.MatchesText(record, term) {
			results = append(results, record)
		}
	}
	return results, nil
}

// Query answers a dashboard list request. Text queries search the full
// collection; everything else reads the cached catalog.
func (s *Service) Query(ctx context.Context, req models.ListRequest) (*models.ListResponse, error) {
	var records []models.SkuRecord
	var err error
	if query.IsTextQuery(req.Query) {
		records, err = s.SearchSkus(ctx, req.Query)
	} else {
		records, err = s.catalog.Records(ctx)
	}
	if err != nil {
		return nil, err
	}

	result, err := query.Run(records, req.Query, req.Filters(), req.Pagination())
	if err != nil {
		return nil, err
	}

	return &models.ListResponse{
		Items:         result.Visible,
		TotalMatching: result.TotalMatching,
		TotalPages:    result.TotalPages,
		Page:          req.Page,
		PageSize:      req.PageSize,
		Query:         req.Query,
		Filters:       req.Filters(),
		Seq:           req.Seq,
	}, nil
}

// DetailKey maps a SKU id to its document key, defaulting to the fresh warehouse
func DetailKey(id string) string {
	if strings.Contains(id, "-") {
		return id
	}
	return id + freshSuffix
}

// AlternateKey maps a fresh warehouse key to the frozen warehouse key
func AlternateKey(key string) string {
	return strings.TrimSuffix(key, freshSuffix) + frozenSuffix
}
