package ports

import (
	"context"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// EnrollmentRepository persists enrollments keyed by (user, course).
type EnrollmentRepository interface {
	Create(ctx context.Context, e domain.Enrollment) (*domain.Enrollment, error)
	// Find returns domain.ErrNotEnrolled when no enrollment exists.
	Find(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	Update(ctx context.Context, e domain.Enrollment) error
	// ListByUser returns enrollments in the order they were created.
	ListByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
}

// EnrolledCourse joins an enrollment with its course.
type EnrolledCourse struct {
	Course     domain.Course
	Enrollment domain.Enrollment
}

// StudentStats are the aggregates shown on the student dashboard.
type StudentStats struct {
	TotalCourses     int
	CompletedCourses int
	TotalMinutes     int
	AvgProgress      int
}

// StudentDashboard is the full student view.
type StudentDashboard struct {
	Courses []EnrolledCourse
	Stats   StudentStats
}

// DashboardService implements the student dashboard use cases.
type DashboardService interface {
	Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (*domain.Enrollment, error)
	Dashboard(ctx context.Context, userID string) (*StudentDashboard, error)
}
