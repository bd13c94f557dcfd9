package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// ApplyQuery derives the displayed course list from the catalog. It is a pure
// function: the catalog is never mutated and equal inputs give equal output.
// Stages run in a fixed order: text, category, difficulty, then a stable sort
// that keeps catalog order among equal keys.
func ApplyQuery(catalog []domain.Course, state domain.QueryState) []domain.Course {
	state = state.Normalize()
	needle := strings.ToLower(state.Query)

	out := make([]domain.Course, 0, len(catalog))
	for _, c := range catalog {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) {
			continue
		}
		if state.Category != domain.FilterAll && c.Category != state.Category {
			continue
		}
		if state.Difficulty != domain.FilterAll && string(c.Difficulty) != state.Difficulty {
			continue
		}
		out = append(out, c.Clone())
	}

	slices.SortStableFunc(out, comparator(state.SortBy))
	return out
}

func comparator(mode domain.SortMode) func(a, b domain.Course) int {
	switch mode {
	case domain.SortRating:
		return func(a, b domain.Course) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortPriceAscending:
		return func(a, b domain.Course) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceDescending:
		return func(a, b domain.Course) int { return cmp.Compare(b.Price, a.Price) }
	default:
		return func(a, b domain.Course) int { return cmp.Compare(b.EnrolledCount, a.EnrolledCount) }
	}
}

// Categories lists the category filter options: "all" followed by each
// distinct category in first-seen catalog order.
func Categories(catalog []domain.Course) []string {
	out := []string{domain.FilterAll}
	seen := make(map[string]struct{}, len(catalog))
	for _, c := range catalog {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}
