package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubCourseRepo struct {
	courses []domain.Course
	nextID  int
	listErr error // if set, List returns this error
}

func newStubCourseRepo(courses ...domain.Course) *stubCourseRepo {
	return &stubCourseRepo{courses: courses}
}

func (r *stubCourseRepo) List(_ context.Context) ([]domain.Course, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Course, len(r.courses))
	for i, c := range r.courses {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *stubCourseRepo) Get(_ context.Context, id string) (*domain.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			clone := c.Clone()
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Create(_ context.Context, c domain.Course) (*domain.Course, error) {
	r.nextID++
	c.ID = fmt.Sprintf("new-%d", r.nextID)
	r.courses = append(r.courses, c.Clone())
	return &c, nil
}

func (r *stubCourseRepo) Update(_ context.Context, c domain.Course) (*domain.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == c.ID {
			r.courses[i] = c.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = slices.Delete(r.courses, i, i+1)
			return nil
		}
	}
	return domain.ErrCourseNotFound
}

type stubEnrollmentRepo struct {
	items []domain.Enrollment
}

func (r *stubEnrollmentRepo) Create(_ context.Context, e domain.Enrollment) (*domain.Enrollment, error) {
	e.ID = fmt.Sprintf("enr-%d", len(r.items)+1)
	r.items = append(r.items, e.Clone())
	return &e, nil
}

func (r *stubEnrollmentRepo) Find(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	for _, e := range r.items {
		if e.UserID == userID && e.CourseID == courseID {
			clone := e.Clone()
			return &clone, nil
		}
	}
	return nil, domain.ErrNotEnrolled
}

func (r *stubEnrollmentRepo) Update(_ context.Context, e domain.Enrollment) error {
	for i := range r.items {
		if r.items[i].UserID == e.UserID && r.items[i].CourseID == e.CourseID {
			r.items[i] = e.Clone()
			return nil
		}
	}
	return domain.ErrNotEnrolled
}

func (r *stubEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}
