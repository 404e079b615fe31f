package domain

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1

	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 20

	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// PageRequest holds pagination parameters, 1-indexed.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps a PageRequest to valid bounds: page >= 1, limit in
// [1, MaxLimit]. A limit <= 0 falls back to the default rather than
// poisoning the total-pages division.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the zero-based row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit) for a normalized request.
func (p PageRequest) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
