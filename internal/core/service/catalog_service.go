package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// CatalogService serves course browsing and the admin management surface.
type CatalogService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewCatalogService(repo ports.CourseRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Browse applies the query state to a snapshot of the catalog.
func (s *CatalogService) Browse(ctx context.Context, state domain.QueryState) ([]domain.Course, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse courses: %w", err)
	}
	return ApplyQuery(catalog, state), nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return Categories(catalog), nil
}

func (s *CatalogService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.Get(ctx, id)
}

// CreateCourse adds a course with no ratings, students or lessons yet.
func (s *CatalogService) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	c := domain.Course{CreatedAt: s.now(), Lessons: []domain.Lesson{}}
	applyCourseInput(&c, in)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create course")
		return nil, err
	}
	s.log.Info().Str("course_id", created.ID).Str("title", created.Title).Msg("course created")
	return created, nil
}

// UpdateCourse overwrites the admin-editable fields and keeps the rest.
func (s *CatalogService) UpdateCourse(ctx context.Context, id string, in ports.CourseInput) (*domain.Course, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCourseInput(c, in)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, *c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("course_id", id).Msg("course updated")
	return updated, nil
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	return nil
}

// AddLesson appends a lesson after the last one, keeping orders contiguous.
func (s *CatalogService) AddLesson(ctx context.Context, courseID string, in ports.LessonInput) (*domain.Course, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: lesson title is required", domain.ErrInvalidCourse)
	}
	if in.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: lesson duration must not be negative", domain.ErrInvalidCourse)
	}

	c, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	order := len(c.Lessons) + 1
	c.Lessons = append(c.Lessons, domain.Lesson{
		ID:              fmt.Sprintf("%s-%d", c.ID, order),
		CourseID:        c.ID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		VideoURL:        in.VideoURL,
		Content:         in.Content,
		DurationMinutes: in.DurationMinutes,
		Order:           order,
	})
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, *c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("course_id", courseID).Int("order", order).Msg("lesson added")
	return updated, nil
}

// Stats aggregates the admin dashboard figures. The average rating is
// rounded to one decimal and is 0 for an empty catalog.
func (s *CatalogService) Stats(ctx context.Context) (*ports.CatalogStats, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}

	stats := &ports.CatalogStats{TotalCourses: len(catalog)}
	var ratingSum float64
	for _, c := range catalog {
		stats.TotalStudents += c.EnrolledCount
		stats.TotalRevenue += c.Price * float64(c.EnrolledCount)
		ratingSum += c.Rating
	}
	if len(catalog) > 0 {
		stats.AvgRating = math.Round(ratingSum/float64(len(catalog))*10) / 10
	}
	return stats, nil
}

func applyCourseInput(c *domain.Course, in ports.CourseInput) {
	c.Title = strings.TrimSpace(in.Title)
	c.Description = in.Description
	c.Instructor = in.Instructor
	c.Category = in.Category
	c.Difficulty = in.Difficulty
	c.DurationMinutes = in.DurationMinutes
	c.Price = in.Price
}
