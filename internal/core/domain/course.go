package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Difficulty grades a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Lesson is a unit of a course. It has no lifecycle outside its course.
type Lesson struct {
	ID              string `json:"id"`
	CourseID        string `json:"course_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url,omitempty"`
	Content         string `json:"content,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Order           int    `json:"order"`
}

// Course is a catalog entry.
type Course struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Thumbnail       string     `json:"thumbnail,omitempty"`
	Instructor      string     `json:"instructor"`
	Category        string     `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	DurationMinutes int        `json:"duration_minutes"`
	Price           float64    `json:"price"`
	Rating          float64    `json:"rating"`
	EnrolledCount   int        `json:"enrolled_count"`
	CreatedAt       time.Time  `json:"created_at"`
	Lessons         []Lesson   `json:"lessons"`
}

// Validate enforces the catalog invariants on a single course.
func (c *Course) Validate() error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidCourse)
	case !c.Difficulty.Valid():
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidCourse, c.Difficulty)
	case c.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidCourse)
	case c.Rating < 0 || c.Rating > 5:
		return fmt.Errorf("%w: rating must be within 0-5", ErrInvalidCourse)
	case c.EnrolledCount < 0:
		return fmt.Errorf("%w: enrolled count must not be negative", ErrInvalidCourse)
	case c.DurationMinutes < 0:
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidCourse)
	}
	return ValidateLessonOrder(c.Lessons)
}

// Clone returns a deep copy so callers never share the lesson slice.
func (c Course) Clone() Course {
	c.Lessons = slices.Clone(c.Lessons)
	return c
}

// LessonByID finds a lesson of the course.
func (c *Course) LessonByID(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// ValidateLessonOrder requires order values to be unique and to form 1..n.
func ValidateLessonOrder(lessons []Lesson) error {
	seen := make([]bool, len(lessons)+1)
	for _, l := range lessons {
		if l.Order < 1 || l.Order > len(lessons) || seen[l.Order] {
			return ErrInvalidLessonOrder
		}
		seen[l.Order] = true
	}
	return nil
}

// SortLessons returns the lessons in display order.
func SortLessons(lessons []Lesson) []Lesson {
	out := slices.Clone(lessons)
	slices.SortStableFunc(out, func(a, b Lesson) int { return a.Order - b.Order })
	return out
}

// FormatDuration renders a minute count for display, e.g. "42 hours",
// "15 min" or "1 hour 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, rest := minutes/60, minutes%60
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	if rest == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s %d min", hours, unit, rest)
}
