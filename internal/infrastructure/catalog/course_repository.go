package catalog

import (
	"context"
	"slices"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/edulearn/marketplace/internal/core/domain"
)

const idSize = 12

// CourseRepository is a mutex-guarded, order-preserving in-memory catalog.
// Every read and write copies courses so callers never alias stored state.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []domain.Course
}

// NewCourseRepository seeds the repository with courses in the given order.
func NewCourseRepository(courses []domain.Course) *CourseRepository {
	r := &CourseRepository{courses: make([]domain.Course, len(courses))}
	for i, c := range courses {
		r.courses[i] = c.Clone()
	}
	return r
}

func (r *CourseRepository) List(_ context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Course, len(r.courses))
	for i, c := range r.courses {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *CourseRepository) Get(_ context.Context, id string) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrCourseNotFound
	}
	c := r.courses[i].Clone()
	return &c, nil
}

// Create appends the course, assigning a fresh id.
func (r *CourseRepository) Create(_ context.Context, c domain.Course) (*domain.Course, error) {
	id, err := gonanoid.New(idSize)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c = c.Clone()
	c.ID = id
	for i := range c.Lessons {
		c.Lessons[i].CourseID = id
	}
	r.courses = append(r.courses, c)

	out := c.Clone()
	return &out, nil
}

// Update replaces the stored course in place, keeping its catalog position.
func (r *CourseRepository) Update(_ context.Context, c domain.Course) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.ID)
	if i < 0 {
		return nil, domain.ErrCourseNotFound
	}
	r.courses[i] = c.Clone()

	out := c.Clone()
	return &out, nil
}

func (r *CourseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrCourseNotFound
	}
	r.courses = slices.Delete(r.courses, i, i+1)
	return nil
}

func (r *CourseRepository) indexOf(id string) int {
	return slices.IndexFunc(r.courses, func(c domain.Course) bool { return c.ID == id })
}
