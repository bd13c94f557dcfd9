package domain

import "errors"

// Session errors.
var (
	ErrNoActiveSession         = errors.New("no active session")
	ErrMalformedPersistedState = errors.New("malformed persisted session")
	ErrInvalidRole             = errors.New("invalid role")
	ErrEmptyCredentials        = errors.New("email and password are required")
	ErrSlotEmpty               = errors.New("session slot is empty")
	ErrForbidden               = errors.New("access forbidden")
)

// Catalog errors.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrInvalidCourse      = errors.New("invalid course")
	ErrInvalidLessonOrder = errors.New("lesson order must be unique and contiguous from 1")
	ErrLessonNotFound     = errors.New("lesson not found")
)

// Enrollment errors.
var (
	ErrAlreadyEnrolled = errors.New("already enrolled in course")
	ErrNotEnrolled     = errors.New("not enrolled in course")
)
