package models

// MaxPage bounds the page query parameter
const MaxPage = 1000000

// ListRequest carries the dashboard list parameters as received over HTTP.
// Seq is an opaque client sequence number echoed back in the response so the
// browser can drop responses that arrive after a newer request was issued.
type ListRequest struct {
	Query               string `json:"q" validate:"max=200"`
	Category            string `json:"category" validate:"required"`
	Storage             string `json:"storage" validate:"oneof=all Fresh Frozen"`
	ActiveInventoryOnly bool   `json:"active"`
	Page                int    `json:"page" validate:"min=1,max=1000000"`
	PageSize            int    `json:"pageSize" validate:"min=1,max=100"`
	Seq                 uint64 `json:"seq"`
}

// Filters returns the discrete filters of the request
func (r ListRequest) Filters() Filters {
	return Filters{
		Category:            r.Category,
		Storage:             r.Storage,
		ActiveInventoryOnly: r.ActiveInventoryOnly,
	}
}

// Pagination returns the requested page
func (r ListRequest) Pagination() Pagination {
	return Pagination{Page: r.Page, PageSize: r.PageSize}
}

// ListResponse is a page of the dashboard list together with the inputs that produced it
type ListResponse struct {
	Items         []SkuRecord `json:"items"`
	TotalMatching int         `json:"total_matching"`
	TotalPages    int         `json:"total_pages"`
	Page          int         `json:"page"`
	PageSize      int         `json:"page_size"`
	Query         string      `json:"q"`
	Filters       Filters     `json:"filters"`
	Seq           uint64      `json:"seq"`
}
