package pagination

import "math"

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params contains offset pagination parameters
type Params struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// Normalize clamps the parameters to sane values
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// Offset returns the number of records to skip
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// LastPage returns the index of the last page for a total record count
func LastPage(total, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	last := int(math.Ceil(float64(total) / float64(perPage)))
	if last < 1 {
		last = 1
	}
	return last
}

// Page returns the slice of items belonging to the requested page
func Page[T any](items []T, p Params) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
