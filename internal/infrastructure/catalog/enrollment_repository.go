package catalog

import (
	"context"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// EnrollmentRepository keeps enrollments in memory, in creation order.
type EnrollmentRepository struct {
	mu    sync.RWMutex
	items []domain.Enrollment
}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

func (r *EnrollmentRepository) Create(_ context.Context, e domain.Enrollment) (*domain.Enrollment, error) {
	id, err := gonanoid.New(idSize)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(e.UserID, e.CourseID) >= 0 {
		return nil, domain.ErrAlreadyEnrolled
	}
	e = e.Clone()
	e.ID = id
	r.items = append(r.items, e)

	out := e.Clone()
	return &out, nil
}

func (r *EnrollmentRepository) Find(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(userID, courseID)
	if i < 0 {
		return nil, domain.ErrNotEnrolled
	}
	out := r.items[i].Clone()
	return &out, nil
}

func (r *EnrollmentRepository) Update(_ context.Context, e domain.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(e.UserID, e.CourseID)
	if i < 0 {
		return domain.ErrNotEnrolled
	}
	e = e.Clone()
	e.ID = r.items[i].ID
	r.items[i] = e
	return nil
}

func (r *EnrollmentRepository) ListByUser(_ context.Context, userID string) ([]domain.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Enrollment
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

func (r *EnrollmentRepository) indexOf(userID, courseID string) int {
	for i, e := range r.items {
		if e.UserID == userID && e.CourseID == courseID {
			return i
		}
	}
	return -1
}
