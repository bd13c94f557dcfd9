package ports

import (
	"context"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// CourseRepository is the in-memory catalog collaborator. List returns the
// catalog in its stored order.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, c domain.Course) (*domain.Course, error)
	Update(ctx context.Context, c domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// CourseInput carries the admin-editable fields of a course.
type CourseInput struct {
	Title           string
	Description     string
	Instructor      string
	Category        string
	Difficulty      domain.Difficulty
	DurationMinutes int
	Price           float64
}

// LessonInput carries the fields of a lesson appended by an admin.
type LessonInput struct {
	Title           string
	Description     string
	VideoURL        string
	Content         string
	DurationMinutes int
}

// CatalogStats are the aggregates shown on the admin dashboard.
type CatalogStats struct {
	TotalCourses  int
	TotalStudents int
	TotalRevenue  float64
	AvgRating     float64
}

// CatalogService serves the browsing view and the admin management surface.
type CatalogService interface {
	Browse(ctx context.Context, state domain.QueryState) ([]domain.Course, error)
	Categories(ctx context.Context) ([]string, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, in CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, in CourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	AddLesson(ctx context.Context, courseID string, in LessonInput) (*domain.Course, error)
	Stats(ctx context.Context) (*CatalogStats, error)
}
