package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// DashboardService tracks student enrollments and lesson progress.
type DashboardService struct {
	courses     ports.CourseRepository
	enrollments ports.EnrollmentRepository
	log         zerolog.Logger
	now         func() time.Time
}

func NewDashboardService(courses ports.CourseRepository, enrollments ports.EnrollmentRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		courses:     courses,
		enrollments: enrollments,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Enroll starts a course for a user at zero progress.
func (s *DashboardService) Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		return nil, err
	}

	existing, err := s.enrollments.Find(ctx, userID, courseID)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrAlreadyEnrolled
	case err != nil && !errors.Is(err, domain.ErrNotEnrolled):
		return nil, fmt.Errorf("enroll: %w", err)
	}

	created, err := s.enrollments.Create(ctx, domain.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		CompletedLessons: []string{},
		EnrolledAt:       s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("enroll: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("course_id", courseID).Msg("enrolled")
	return created, nil
}

// CompleteLesson marks a lesson done and recomputes progress. Completing an
// already completed lesson leaves the enrollment unchanged.
func (s *DashboardService) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) (*domain.Enrollment, error) {
	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if _, ok := course.LessonByID(lessonID); !ok {
		return nil, domain.ErrLessonNotFound
	}

	e, err := s.enrollments.Find(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if e.HasCompleted(lessonID) {
		return e, nil
	}

	e.CompletedLessons = append(e.CompletedLessons, lessonID)
	e.Progress = progressOf(len(e.CompletedLessons), len(course.Lessons))
	if e.Completed() && e.CompletedAt == nil {
		t := s.now()
		e.CompletedAt = &t
	}

	if err := s.enrollments.Update(ctx, *e); err != nil {
		return nil, fmt.Errorf("complete lesson: %w", err)
	}
	s.log.Info().
		Str("user_id", userID).
		Str("course_id", courseID).
		Int("progress", e.Progress).
		Msg("lesson completed")
	return e, nil
}

// Dashboard joins the user's enrollments with their courses and computes the
// summary figures. Enrollments whose course was deleted are skipped.
func (s *DashboardService) Dashboard(ctx context.Context, userID string) (*ports.StudentDashboard, error) {
	list, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	out := &ports.StudentDashboard{Courses: make([]ports.EnrolledCourse, 0, len(list))}
	var progressSum int
	for _, e := range list {
		course, err := s.courses.Get(ctx, e.CourseID)
		if errors.Is(err, domain.ErrCourseNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		out.Courses = append(out.Courses, ports.EnrolledCourse{Course: *course, Enrollment: e})
		out.Stats.TotalMinutes += course.DurationMinutes
		if e.Completed() {
			out.Stats.CompletedCourses++
		}
		progressSum += e.Progress
	}

	out.Stats.TotalCourses = len(out.Courses)
	if out.Stats.TotalCourses > 0 {
		out.Stats.AvgProgress = int(math.Round(float64(progressSum) / float64(out.Stats.TotalCourses)))
	}
	return out, nil
}

func progressOf(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
