package domain

import (
	"errors"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		0:    "0 min",
		15:   "15 min",
		60:   "1 hour",
		90:   "1 hour 30 min",
		120:  "2 hours",
		2520: "42 hours",
		125:  "2 hours 5 min",
	}
	for minutes, want := range cases {
		if got := FormatDuration(minutes); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestValidateLessonOrder(t *testing.T) {
	lessons := func(orders ...int) []Lesson {
		out := make([]Lesson, len(orders))
		for i, o := range orders {
			out[i] = Lesson{ID: "l", Order: o}
		}
		return out
	}

	valid := [][]Lesson{nil, lessons(1), lessons(2, 1, 3)}
	for _, ls := range valid {
		if err := ValidateLessonOrder(ls); err != nil {
			t.Fatalf("expected valid order for %+v, got %v", ls, err)
		}
	}

	invalid := [][]Lesson{lessons(0), lessons(1, 1), lessons(1, 3), lessons(2)}
	for _, ls := range invalid {
		if err := ValidateLessonOrder(ls); !errors.Is(err, ErrInvalidLessonOrder) {
			t.Fatalf("expected ErrInvalidLessonOrder for %+v, got %v", ls, err)
		}
	}
}

func TestCourse_Validate(t *testing.T) {
	base := Course{
		ID:         "1",
		Title:      "Go",
		Difficulty: DifficultyBeginner,
		Price:      10,
		Rating:     4.5,
		Lessons:    []Lesson{{ID: "1-1", Order: 1}},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid course, got %v", err)
	}

	broken := []func(c *Course){
		func(c *Course) { c.Title = " " },
		func(c *Course) { c.Difficulty = "expert" },
		func(c *Course) { c.Price = -1 },
		func(c *Course) { c.Rating = 5.1 },
		func(c *Course) { c.EnrolledCount = -3 },
	}
	for i, mutate := range broken {
		c := base.Clone()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidCourse) {
			t.Fatalf("case %d: expected ErrInvalidCourse, got %v", i, err)
		}
	}

	c := base.Clone()
	c.Lessons = append(c.Lessons, Lesson{ID: "1-2", Order: 1})
	if err := c.Validate(); !errors.Is(err, ErrInvalidLessonOrder) {
		t.Fatalf("expected ErrInvalidLessonOrder, got %v", err)
	}
}

func TestCourse_CloneDoesNotShareLessons(t *testing.T) {
	orig := Course{ID: "1", Lessons: []Lesson{{ID: "a", Order: 1}}}
	clone := orig.Clone()
	clone.Lessons[0].Title = "changed"

	if orig.Lessons[0].Title != "" {
		t.Fatalf("clone mutated the original lessons")
	}
}

func TestSortLessons(t *testing.T) {
	in := []Lesson{{ID: "c", Order: 3}, {ID: "a", Order: 1}, {ID: "b", Order: 2}}
	out := SortLessons(in)

	for i, want := range []string{"a", "b", "c"} {
		if out[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, out[i].ID)
		}
	}
	if in[0].ID != "c" {
		t.Fatalf("input slice was reordered")
	}
}
