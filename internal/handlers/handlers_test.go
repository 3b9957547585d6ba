package handlers

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/models"
)

// mockSkuService implements interfaces.SkuService for testing
type mockSkuService struct {
	listFunc   func(ctx context.Context) ([]models.SkuRecord, error)
	getFunc    func(ctx context.Context, id string) (*models.SkuRecord, error)
	searchFunc func(ctx context.Context, term string) ([]models.SkuRecord, error)
	queryFunc  func(ctx context.Context, req models.ListRequest) (*models.ListResponse, error)
}

func (m *mockSkuService) ListSkus(ctx context.Context) ([]models.SkuRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSkuService) GetSku(ctx context.Context, id string) (*models.SkuRecord, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSkuService) SearchSkus(ctx context.Context, term string) ([]models.SkuRecord, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, term)
	}
	return nil, nil
}

func (m *mockSkuService) Query(ctx context.Context, req models.ListRequest) (*models.ListResponse, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, req)
	}
	return &models.ListResponse{Items: []models.SkuRecord{}, TotalPages: 1, Page: req.Page, PageSize: req.PageSize}, nil
}

func testDashboardConfig() common.DashboardConfig {
	return common.DashboardConfig{
		Collection:      "evals",
		ListLimit:       100,
		PageSize:        25,
		RefreshInterval: "30s",
		Categories:      []string{"Beef", "Poultry"},
	}
}

func testLogger() arbor.ILogger {
	return arbor.NewLogger()
}

func float(v float64) *float64 {
	return &v
}

// Helper function to create a normalized record
func createTestSku(id, description string, storage models.Storage) models.SkuRecord {
	return models.SkuRecord{
		ID:            id,
		ProductCode:   id,
		Description:   description,
		Category:      models.CategoryBeef,
		Storage:       storage,
		AIPrice:       12.4,
		GPPercent:     18.5,
		Inventory:     1234.5,
		LastCost:      10,
		WarehouseCode: 1,
		WeeksOnHand:   "2.5",
		Rationale:     []string{},
	}
}

// respondWith builds a query func that pages over records like the real engine
func respondWith(records []models.SkuRecord) func(context.Context, models.ListRequest) (*models.ListResponse, error) {
	return func(_ context.Context, req models.ListRequest) (*models.ListResponse, error) {
		total := len(records)
		pages := (total + req.PageSize - 1) / req.PageSize
		if pages < 1 {
			pages = 1
		}
		from := (req.Page - 1) * req.PageSize
		to := from + req.PageSize
		if from > total {
			from = total
		}
		if to > total {
			to = total
		}
		return &models.ListResponse{
			Items:         records[from:to],
			TotalMatching: total,
			TotalPages:    pages,
			Page:          req.Page,
			PageSize:      req.PageSize,
			Query:         req.Query,
			Filters:       req.Filters(),
			Seq:           req.Seq,
		}, nil
	}
}
