package media

import (
	"slices"
)

// DefaultPerPage is used when a page neither publishes its page size nor
// yields any items to count.
const DefaultPerPage = 20

// Pagination describes where a listing page sits in its result set,
// independent of the markup the site used to express it.
type Pagination struct {
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
	NextURL     *string `json:"next_url,omitempty"`
	PreviousURL *string `json:"previous_url,omitempty"`
	PageNumbers []int   `json:"page_numbers"`
	PerPage     int     `json:"per_page"`
}

// NoPagination is the descriptor for a page without any pagination widget.
func NoPagination(fallback int) Pagination {
	if fallback < 1 {
		fallback = 1
	}
	return Pagination{
		CurrentPage: fallback,
		TotalPages:  fallback,
		PageNumbers: []int{},
		PerPage:     DefaultPerPage,
	}
}

// Normalize enforces the descriptor invariants: current page is at least 1,
// total pages is at least the current page, the next/previous flags mirror
// the presence of their URLs, and page numbers are ascending without
// duplicates or non-positive values.
func (p Pagination) Normalize() Pagination {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.TotalPages < p.CurrentPage {
		p.TotalPages = p.CurrentPage
	}

	if p.NextURL != nil && *p.NextURL == "" {
		p.NextURL = nil
	}
	if p.PreviousURL != nil && *p.PreviousURL == "" {
		p.PreviousURL = nil
	}
	p.HasNext = p.NextURL != nil
	p.HasPrevious = p.PreviousURL != nil

	numbers := make([]int, 0, len(p.PageNumbers))
	for _, n := range p.PageNumbers {
		if n >= 1 {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)
	p.PageNumbers = slices.Compact(numbers)

	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}

	return p
}
