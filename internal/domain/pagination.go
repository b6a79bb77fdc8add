package domain

// PaginationParams selects one page of a registration or event listing.
// Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset converts the page number to the row offset used by LIMIT/OFFSET
// queries. Pages below 1 are treated as page 1.
func (p PaginationParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}
