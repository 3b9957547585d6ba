package query

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/pricedash/internal/models"
)

func fixtureRecords(n int) []models.SkuRecord {
	records := make([]models.SkuRecord, n)
	for i := range records {
		records[i] = models.SkuRecord{
			ID:          fmt.Sprintf("%d-1", 1000+i),
			ProductCode: fmt.Sprintf("%d", 1000+i),
			Description: fmt.Sprintf("Item %d", i),
			Category:    models.CategoryBeef,
			Storage:     models.StorageFresh,
			Inventory:   10,
		}
	}
	return records
}

func TestRun_PaginationTotals(t *testing.T) {
	records := fixtureRecords(57)

	tests := []struct {
		page        int
		wantVisible int
		wantFirstID string
	}{
		{page: 1, wantVisible: 25, wantFirstID: "1000-1"},
		{page: 2, wantVisible: 25, wantFirstID: "1025-1"},
		{page: 3, wantVisible: 7, wantFirstID: "1050-1"},
		{page: 4, wantVisible: 0},
		{page: 1<<61 + 1, wantVisible: 0},
		{page: 1<<62 + 1, wantVisible: 0},
		{page: math.MaxInt64, wantVisible: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			result, err := Run(records, "", models.AllFilters(), models.Pagination{Page: tt.page, PageSize: 25})
			require.NoError(t, err)

			assert.Equal(t, 57, result.TotalMatching)
			assert.Equal(t, 3, result.TotalPages)
			assert.Len(t, result.Visible, tt.wantVisible)
			if tt.wantFirstID != "" {
				assert.Equal(t, tt.wantFirstID, result.Visible[0].ID)
			}
		})
	}
}

func TestRun_EmptyInputHasOnePage(t *testing.T) {
	result, err := Run(nil, "", models.AllFilters(), models.Pagination{Page: 1, PageSize: 25})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalMatching)
	assert.Equal(t, 1, result.TotalPages)
	assert.Empty(t, result.Visible)
}

func TestRun_InvalidPagination(t *testing.T) {
	records := fixtureRecords(3)

	_, err := Run(records, "", models.AllFilters(), models.Pagination{Page: 0, PageSize: 25})
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = Run(records, "", models.AllFilters(), models.Pagination{Page: 1, PageSize: 0})
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestRun_Idempotent(t *testing.T) {
	records := fixtureRecords(40)
	filters := models.Filters{Category: models.CategoryBeef, Storage: models.FilterAll}
	pagination := models.Pagination{Page: 2, PageSize: 10}

	first, err := Run(records, "item 1", filters, pagination)
	require.NoError(t, err)
	second, err := Run(records, "item 1", filters, pagination)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_ShortQueryBypass(t *testing.T) {
	records := []models.SkuRecord{
		{ID: "1", ProductCode: "ABC", Description: "Brisket", Category: models.CategoryBeef},
		{ID: "2", ProductCode: "XYZ", Description: "Ribeye", Category: models.CategoryBeef},
		{ID: "3", ProductCode: "QQQ", Description: "Chuck", Category: models.CategoryBeef},
	}
	pagination := models.Pagination{Page: 1, PageSize: 25}

	for _, q := range []string{"", "a", "Z", "é"} {
		result, err := Run(records, q, models.AllFilters(), pagination)
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalMatching, "query %q should match everything", q)
	}

	result, err := Run(records, "ab", models.AllFilters(), pagination)
	require.NoError(t, err)
	require.Len(t, result.Visible, 1)
	assert.Equal(t, "1", result.Visible[0].ID)
}

func TestMatchesText(t *testing.T) {
	record := models.SkuRecord{ProductCode: "BF-2210", Description: "Striploin Choice 0x1"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "product code", query: "bf-22", want: true},
		{name: "description case insensitive", query: "STRIPLOIN", want: true},
		{name: "description middle", query: "choice", want: true},
		{name: "no match", query: "ribeye", want: false},
		{name: "single character matches all", query: "q", want: true},
		{name: "empty matches all", query: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesText(record, tt.query))
		})
	}
}

func TestMatches_FilterComposition(t *testing.T) {
	records := []models.SkuRecord{
		{ID: "all-three", Category: models.CategoryBeef, Storage: models.StorageFrozen, Inventory: 12},
		{ID: "wrong-category", Category: "Poultry", Storage: models.StorageFrozen, Inventory: 12},
		{ID: "wrong-storage", Category: models.CategoryBeef, Storage: models.StorageFresh, Inventory: 12},
		{ID: "no-inventory", Category: models.CategoryBeef, Storage: models.StorageFrozen, Inventory: 0},
		{ID: "negative-inventory", Category: models.CategoryBeef, Storage: models.StorageFrozen, Inventory: -3},
	}
	filters := models.Filters{
		Category:            models.CategoryBeef,
		Storage:             string(models.StorageFrozen),
		ActiveInventoryOnly: true,
	}

	matching := Filter(records, "", filters)

	require.Len(t, matching, 1)
	assert.Equal(t, "all-three", matching[0].ID)

	for _, record := range records[1:] {
		assert.False(t, Matches(record, "", filters), record.ID)
	}
}

func TestMatches_AllFiltersPassEverything(t *testing.T) {
	record := models.SkuRecord{Category: "Seafood", Storage: models.StorageFresh}
	assert.True(t, Matches(record, "", models.AllFilters()))
}

func TestRun_PreservesOrder(t *testing.T) {
	records := []models.SkuRecord{
		{ID: "c", ProductCode: "beef-3"},
		{ID: "a", ProductCode: "pork-1"},
		{ID: "b", ProductCode: "beef-1"},
	}

	result, err := Run(records, "beef", models.AllFilters(), models.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Visible, 2)
	assert.Equal(t, "c", result.Visible[0].ID)
	assert.Equal(t, "b", result.Visible[1].ID)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
	assert.Equal(t, 3, TotalPages(57, 25))
	assert.Equal(t, 1, TotalPages(10, 0))
	assert.Equal(t, 1, TotalPages(3, math.MaxInt))
}

func TestRun_HugePageSize(t *testing.T) {
	result, err := Run(fixtureRecords(3), "", models.AllFilters(), models.Pagination{Page: 1, PageSize: math.MaxInt})
	require.NoError(t, err)

	assert.Len(t, result.Visible, 3)
	assert.Equal(t, 1, result.TotalPages)
}
