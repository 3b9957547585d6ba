// Package pricing maps pricing evaluation documents into SKU records and
// formats their values for display.
package pricing

import (
	"github.com/ternarybob/pricedash/internal/models"
)

// Source field names of a pricing evaluation document
const (
	FieldProductCode       = "ProductCode"
	FieldDescription       = "Description1"
	FieldWarehouseCode     = "WarehouseCode"
	FieldComputedPrice     = "Computed_Price"
	FieldRecommendedMargin = "Recommended_Margin"
	FieldInventoryLbs      = "InventoryLbs"
	FieldLastCost          = "LastCost"
	FieldEvalSalesPrice    = "EvalSalesPrice"
	FieldRecentGPPercent   = "Recent_GPPercent"
	FieldHistoricalGP      = "Historical_GPPercent"
	FieldGPMedian          = "GPMedian"
	FieldWeeksOnHand       = "WeeksOnHand"
	FieldRationale         = "Rationale"
	FieldUSDATodayPrice    = "USDA_TodayPrice"
	FieldUSDA7dPctChange   = "USDA_7d_pct_change"
	FieldUSDA30v90Change   = "USDA_30v90_pct_change"
	FieldUSDA1yrPctChange  = "USDA_1yr_pct_change"
)

// Normalize converts a raw pricing document into a SkuRecord. It never fails:
// missing or malformed fields take their documented defaults.
func Normalize(raw models.RawDocument, key string) models.SkuRecord {
	warehouseCode := toInteger(raw[FieldWarehouseCode])

	return models.SkuRecord{
		ID:             key,
		ProductCode:    toText(raw[FieldProductCode]),
		Description:    toText(raw[FieldDescription]),
		Category:       models.CategoryBeef,
		Storage:        StorageFor(warehouseCode),
		AIPrice:        toNumber(raw[FieldComputedPrice]),
		GPPercent:      toNumber(raw[FieldRecommendedMargin]),
		Inventory:      toNumber(raw[FieldInventoryLbs]),
		LastCost:       toNumber(raw[FieldLastCost]),
		BenchmarkPrice: toNumber(raw[FieldEvalSalesPrice]),
		RecentGP:       toNumber(raw[FieldRecentGPPercent]),
		LifetimeGP:     toNumber(raw[FieldHistoricalGP]),
		MedianGP:       toNumber(raw[FieldGPMedian]),
		WeeksOnHand:    weeksOnHand(raw[FieldWeeksOnHand]),
		WarehouseCode:  warehouseCode,
		Rationale:      ParseRationale(raw[FieldRationale]),

		// Zero market values are treated as not available
		USDATodayPrice:     toOptionalNumber(raw, FieldUSDATodayPrice),
		USDA7dPctChange:    toOptionalNumber(raw, FieldUSDA7dPctChange),
		USDA30v90PctChange: toOptionalNumber(raw, FieldUSDA30v90Change),
		USDA1yrPctChange:   toOptionalNumber(raw, FieldUSDA1yrPctChange),
	}
}

// NormalizeAll maps keyed documents in order
func NormalizeAll(docs []models.KeyedDocument) []models.SkuRecord {
	records := make([]models.SkuRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, Normalize(doc.Data, doc.Key))
	}
	return records
}

// StorageFor derives the storage condition from a warehouse code
func StorageFor(warehouseCode int) models.Storage {
	if warehouseCode == models.FreshWarehouseCode {
		return models.StorageFresh
	}
	return models.StorageFrozen
}

// weeksOnHand keeps the value textual; empty and false-like values read as "0"
func weeksOnHand(v interface{}) string {
	if b, ok := v.(bool); ok && !b {
		return "0"
	}
	if s := toText(v); s != "" {
		return s
	}
	return "0"
}
