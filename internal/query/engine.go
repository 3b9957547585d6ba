// Package query filters, searches and paginates normalized SKU records.
// Every function in the package is pure: the same inputs always produce the
// same result.
package query

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/pricedash/internal/models"
)

// MinQueryLength is the shortest query that restricts results by text.
// Shorter queries match every record.
const MinQueryLength = 2

// ErrInvalidPagination is returned when page < 1 or pageSize <= 0
var ErrInvalidPagination = errors.New("invalid pagination: page must be >= 1 and page size > 0")

// Run applies the text query and filters to records and returns the requested page.
// Matching records keep their relative order. A page beyond the last page
// yields an empty Visible slice; callers clamp navigation themselves.
func Run(records []models.SkuRecord, query string, filters models.Filters, pagination models.Pagination) (models.QueryResult, error) {
	if pagination.Page < 1 || pagination.PageSize <= 0 {
		return models.QueryResult{}, ErrInvalidPagination
	}

	matching := Filter(records, query, filters)
	totalPages := TotalPages(len(matching), pagination.PageSize)

	// Pages past the end are empty. Checking before multiplying keeps
	// (Page-1)*PageSize from overflowing.
	visible := []models.SkuRecord{}
	if pagination.Page <= totalPages {
		start := (pagination.Page - 1) * pagination.PageSize
		end := len(matching)
		if len(matching)-start > pagination.PageSize {
			end = start + pagination.PageSize
		}
		if start < end {
			visible = make([]models.SkuRecord, end-start)
			copy(visible, matching[start:end])
		}
	}

	return models.QueryResult{
		Visible:       visible,
		TotalMatching: len(matching),
		TotalPages:    totalPages,
	}, nil
}

// Filter returns the records satisfying Matches, in input order
func Filter(records []models.SkuRecord, query string, filters models.Filters) []models.SkuRecord {
	matching := make([]models.SkuRecord, 0, len(records))
	for _, record := range records {
		if Matches(record, query, filters) {
			matching = append(matching, record)
		}
	}
	return matching
}

// Matches reports whether a record satisfies the text query and every filter
func Matches(record models.SkuRecord, query string, filters models.Filters) bool {
	if !MatchesText(record, query) {
		return false
	}
	if filters.Category != models.FilterAll && record.Category != filters.Category {
		return false
	}
	if filters.Storage != models.FilterAll && string(record.Storage) != filters.Storage {
		return false
	}
	if filters.ActiveInventoryOnly && record.Inventory <= 0 {
		return false
	}
	return true
}

// MatchesText performs a case-insensitive substring match of query against the
// product code or description. Queries shorter than MinQueryLength match all.
func MatchesText(record models.SkuRecord, query string) bool {
	if !IsTextQuery(query) {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(record.ProductCode), needle) ||
		strings.Contains(strings.ToLower(record.Description), needle)
}

// IsTextQuery reports whether query is long enough to restrict results
func IsTextQuery(query string) bool {
	return utf8.RuneCountInString(query) >= MinQueryLength
}

// TotalPages is ceil(total / pageSize), never less than 1
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
