package types

// PageRequest is the derived, non-persistent pagination view over a list
// endpoint. Page is 1-based; an out-of-range page yields an empty slice
// downstream, never an error.
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) Limit() int {
	return p.PageSize
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
