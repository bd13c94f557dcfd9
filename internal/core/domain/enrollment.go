package domain

import (
	"slices"
	"time"
)

// Enrollment tracks a student's progress through one course.
type Enrollment struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	CourseID         string     `json:"course_id"`
	Progress         int        `json:"progress"`
	CompletedLessons []string   `json:"completed_lessons"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// Completed reports whether every lesson has been finished.
func (e *Enrollment) Completed() bool {
	return e.Progress == 100
}

// HasCompleted reports whether lessonID is already marked done.
func (e *Enrollment) HasCompleted(lessonID string) bool {
	return slices.Contains(e.CompletedLessons, lessonID)
}

// Clone returns a deep copy.
func (e Enrollment) Clone() Enrollment {
	e.CompletedLessons = slices.Clone(e.CompletedLessons)
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		e.CompletedAt = &t
	}
	return e
}
