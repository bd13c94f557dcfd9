package domain

import "strings"

// FilterAll disables the category or difficulty filter.
const FilterAll = "all"

// SortMode selects the ordering of a course listing.
type SortMode string

const (
	SortPopular         SortMode = "popular"
	SortRating          SortMode = "rating"
	SortPriceAscending  SortMode = "price-ascending"
	SortPriceDescending SortMode = "price-descending"
)

// ParseSortMode accepts the canonical modes plus the "price-low" and
// "price-high" aliases used by the browsing UI. Anything else sorts by
// popularity.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SortRating):
		return SortRating
	case string(SortPriceAscending), "price-low":
		return SortPriceAscending
	case string(SortPriceDescending), "price-high":
		return SortPriceDescending
	default:
		return SortPopular
	}
}

// QueryState holds the browsing view's search, filter and sort parameters.
type QueryState struct {
	Query      string
	Category   string
	Difficulty string
	SortBy     SortMode
}

// Normalize fills unset filters with FilterAll and an unset sort with
// SortPopular.
func (q QueryState) Normalize() QueryState {
	if q.Category == "" {
		q.Category = FilterAll
	}
	if q.Difficulty == "" {
		q.Difficulty = FilterAll
	}
	q.SortBy = ParseSortMode(string(q.SortBy))
	return q
}
