package models

// Storage is the storage condition of a SKU, derived from its warehouse code
type Storage string

const (
	StorageFresh  Storage = "Fresh"
	StorageFrozen Storage = "Frozen"
)

// FreshWarehouseCode is the only warehouse holding fresh product
const FreshWarehouseCode = 1

// CategoryBeef is the single category the pricing evaluations currently cover
const CategoryBeef = "Beef"

// FilterAll disables the category or storage filter
const FilterAll = "all"

// SkuRecord is the canonical, normalized pricing record for one SKU.
// Every numeric field except the USDA market fields always carries a value;
// USDA fields are nil when the market data is not available.
type SkuRecord struct {
	ID             string   `json:"id"`
	ProductCode    string   `json:"productCode"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Storage        Storage  `json:"storage"`
	AIPrice        float64  `json:"aiPrice"`
	GPPercent      float64  `json:"gpPercent"`
	Inventory      float64  `json:"inventory"`
	LastCost       float64  `json:"lastCost"`
	BenchmarkPrice float64  `json:"benchmarkPrice"`
	RecentGP       float64  `json:"recentGP"`
	LifetimeGP     float64  `json:"lifetimeGP"`
	MedianGP       float64  `json:"medianGP"`
	WeeksOnHand    string   `json:"weeksOnHand"`
	WarehouseCode  int      `json:"warehouseCode"`
	Rationale      []string `json:"rationale"`

	// USDA market trends
	USDATodayPrice     *float64 `json:"USDA_TodayPrice,omitempty"`
	USDA7dPctChange    *float64 `json:"USDA_7d_pct_change,omitempty"`
	USDA30v90PctChange *float64 `json:"USDA_30v90_pct_change,omitempty"`
	USDA1yrPctChange   *float64 `json:"USDA_1yr_pct_change,omitempty"`
}

// Filters are the discrete dashboard filters
type Filters struct {
	Category            string `json:"category"`
	Storage             string `json:"storage"`
	ActiveInventoryOnly bool   `json:"activeInventoryOnly"`
}

// AllFilters returns filters that match every record
func AllFilters() Filters {
	return Filters{Category: FilterAll, Storage: FilterAll}
}

// Pagination selects one page of a result set. Page is 1-based.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// QueryResult is one page of records matching a query and filters
type QueryResult struct {
	Visible       []SkuRecord `json:"visible"`
	TotalMatching int         `json:"totalMatching"`
	TotalPages    int         `json:"totalPages"`
}
