// Package pagination holds the offset/limit slicing shared by list endpoints.
package pagination

// Params is a 1-based page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
