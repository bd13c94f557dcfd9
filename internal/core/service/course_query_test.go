package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edulearn/marketplace/internal/core/domain"
)

func ids(courses []domain.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func sampleCatalog() []domain.Course {
	return []domain.Course{
		{ID: "a", Title: "Complete Web Development", Description: "HTML, CSS and React", Category: "Web Development", Difficulty: domain.DifficultyBeginner, Price: 89.99, Rating: 4.8, EnrolledCount: 15420, Lessons: []domain.Lesson{{ID: "a-1", Order: 1}}},
		{ID: "b", Title: "Machine Learning A-Z", Description: "Python and statistics", Category: "Data Science", Difficulty: domain.DifficultyAdvanced, Price: 129.99, Rating: 4.9, EnrolledCount: 8930},
		{ID: "c", Title: "UI/UX Design", Description: "Figma and user research for the web", Category: "Design", Difficulty: domain.DifficultyIntermediate, Price: 79.99, Rating: 4.7, EnrolledCount: 5680},
		{ID: "d", Title: "Node.js APIs", Description: "Build REST services", Category: "Web Development", Difficulty: domain.DifficultyIntermediate, Price: 99.99, Rating: 4.6, EnrolledCount: 8930},
	}
}

func TestApplyQuery_DifficultyFilter(t *testing.T) {
	catalog := []domain.Course{
		{ID: "1", Title: "Web Dev", Difficulty: domain.DifficultyBeginner},
		{ID: "2", Title: "ML", Difficulty: domain.DifficultyAdvanced},
	}

	got := ApplyQuery(catalog, domain.QueryState{Difficulty: "beginner"})

	if diff := cmp.Diff([]string{"1"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_TextFilterIsCaseInsensitive(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{Query: "WEB"})

	// "a" matches on title, "c" only on description.
	if diff := cmp.Diff([]string{"a", "c"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_CategoryFilterIsExact(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{Category: "Web Development"})
	if diff := cmp.Diff([]string{"a", "d"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}

	if got := ApplyQuery(sampleCatalog(), domain.QueryState{Category: "web development"}); len(got) != 0 {
		t.Fatalf("category match must be exact, got %v", ids(got))
	}
}

func TestApplyQuery_CombinedStages(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{
		Query:      "web",
		Category:   "Design",
		Difficulty: "intermediate",
	})
	if diff := cmp.Diff([]string{"c"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_EmptyResult(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{Query: "cobol"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestApplyQuery_PriceSort(t *testing.T) {
	catalog := []domain.Course{
		{ID: "ten", Price: 10},
		{ID: "five", Price: 5},
		{ID: "twenty", Price: 20},
	}

	asc := ApplyQuery(catalog, domain.QueryState{SortBy: domain.SortPriceAscending})
	if diff := cmp.Diff([]string{"five", "ten", "twenty"}, ids(asc)); diff != "" {
		t.Fatalf("price-ascending (-want +got):\n%s", diff)
	}

	desc := ApplyQuery(catalog, domain.QueryState{SortBy: domain.SortPriceDescending})
	if diff := cmp.Diff([]string{"twenty", "ten", "five"}, ids(desc)); diff != "" {
		t.Fatalf("price-descending (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_RatingSort(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{SortBy: domain.SortRating})
	if diff := cmp.Diff([]string{"b", "a", "c", "d"}, ids(got)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_PopularSortIsStable(t *testing.T) {
	// b and d share an enrolled count; catalog order must be kept.
	got := ApplyQuery(sampleCatalog(), domain.QueryState{SortBy: domain.SortPopular})
	if diff := cmp.Diff([]string{"a", "b", "d", "c"}, ids(got)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}

	reversed := sampleCatalog()
	reversed[1], reversed[3] = reversed[3], reversed[1]
	got = ApplyQuery(reversed, domain.QueryState{SortBy: domain.SortPopular})
	if diff := cmp.Diff([]string{"a", "d", "b", "c"}, ids(got)); diff != "" {
		t.Fatalf("unexpected order after swap (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_DefaultsToPopular(t *testing.T) {
	got := ApplyQuery(sampleCatalog(), domain.QueryState{})
	want := ApplyQuery(sampleCatalog(), domain.QueryState{Category: "all", Difficulty: "all", SortBy: domain.SortPopular})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("zero state should equal popular/all/all (-want +got):\n%s", diff)
	}
}

func TestApplyQuery_Idempotent(t *testing.T) {
	catalog := sampleCatalog()
	state := domain.QueryState{Query: "e", SortBy: domain.SortPriceDescending}

	first := ApplyQuery(catalog, state)
	second := ApplyQuery(catalog, state)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated application differs (-first +second):\n%s", diff)
	}
}

func TestApplyQuery_DoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog()
	before := sampleCatalog()

	out := ApplyQuery(catalog, domain.QueryState{SortBy: domain.SortPriceAscending})
	out[0].Title = "changed"
	for i := range out {
		if len(out[i].Lessons) > 0 {
			out[i].Lessons[0].Title = "changed"
		}
	}

	if diff := cmp.Diff(before, catalog); diff != "" {
		t.Fatalf("catalog was mutated (-before +after):\n%s", diff)
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	got := Categories(sampleCatalog())
	want := []string{"all", "Web Development", "Data Science", "Design"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"all"}, Categories(nil)); diff != "" {
		t.Fatalf("empty catalog (-want +got):\n%s", diff)
	}
}
