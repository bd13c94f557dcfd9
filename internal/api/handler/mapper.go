package handler

import (
	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
)

// --- Request → Service input ---

func toCourseInput(req courseRequest) ports.CourseInput {
	return ports.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		Instructor:      req.Instructor,
		Category:        req.Category,
		Difficulty:      domain.Difficulty(req.Difficulty),
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}
}

func toLessonInput(req lessonRequest) ports.LessonInput {
	return ports.LessonInput{
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
	}
}

// --- Service result → HTTP response ---

func toIdentityResponse(id *domain.Identity) *identityResponse {
	if id == nil {
		return nil
	}
	return &identityResponse{
		ID:        id.ID,
		Email:     id.Email,
		Name:      id.Name,
		Role:      string(id.Role),
		CreatedAt: id.CreatedAt.UTC(),
	}
}

func toSessionResponse(id *domain.Identity) sessionResponse {
	view := domain.LandingView(id)
	return sessionResponse{
		Authenticated: id != nil,
		User:          toIdentityResponse(id),
		View:          string(view),
		Redirect:      view.Path(),
	}
}

func toCourseResponse(c domain.Course) courseResponse {
	lessons := domain.SortLessons(c.Lessons)
	out := courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Thumbnail:       c.Thumbnail,
		Instructor:      c.Instructor,
		Category:        c.Category,
		Difficulty:      string(c.Difficulty),
		DurationMinutes: c.DurationMinutes,
		Duration:        domain.FormatDuration(c.DurationMinutes),
		Price:           c.Price,
		Rating:          c.Rating,
		EnrolledCount:   c.EnrolledCount,
		CreatedAt:       c.CreatedAt.UTC(),
		Lessons:         make([]lessonResponse, len(lessons)),
	}
	for i, l := range lessons {
		out.Lessons[i] = lessonResponse{
			ID:              l.ID,
			Title:           l.Title,
			Description:     l.Description,
			VideoURL:        l.VideoURL,
			Content:         l.Content,
			DurationMinutes: l.DurationMinutes,
			Duration:        domain.FormatDuration(l.DurationMinutes),
			Order:           l.Order,
		}
	}
	return out
}

func toListResponse(courses []domain.Course, state domain.QueryState) listCoursesResponse {
	items := make([]courseResponse, len(courses))
	for i, c := range courses {
		items[i] = toCourseResponse(c)
	}
	return listCoursesResponse{
		Data:  items,
		Total: len(items),
		Query: queryResponse{
			Query:      state.Query,
			Category:   state.Category,
			Difficulty: state.Difficulty,
			Sort:       string(state.SortBy),
		},
	}
}

func toStatsResponse(s *ports.CatalogStats) catalogStatsResponse {
	return catalogStatsResponse{
		TotalCourses:  s.TotalCourses,
		TotalStudents: s.TotalStudents,
		TotalRevenue:  s.TotalRevenue,
		AvgRating:     s.AvgRating,
	}
}

func toEnrollmentResponse(e domain.Enrollment) enrollmentResponse {
	completed := e.CompletedLessons
	if completed == nil {
		completed = []string{}
	}
	return enrollmentResponse{
		CourseID:         e.CourseID,
		Progress:         e.Progress,
		CompletedLessons: completed,
		EnrolledAt:       e.EnrolledAt.UTC(),
		CompletedAt:      e.CompletedAt,
	}
}

func toDashboardResponse(id *domain.Identity, d *ports.StudentDashboard) dashboardResponse {
	courses := make([]enrolledCourseResponse, len(d.Courses))
	for i, ec := range d.Courses {
		courses[i] = enrolledCourseResponse{
			Course:     toCourseResponse(ec.Course),
			Enrollment: toEnrollmentResponse(ec.Enrollment),
		}
	}
	return dashboardResponse{
		User:    *toIdentityResponse(id),
		Courses: courses,
		Stats: studentStatsResponse{
			TotalCourses:     d.Stats.TotalCourses,
			CompletedCourses: d.Stats.CompletedCourses,
			TotalMinutes:     d.Stats.TotalMinutes,
			TotalDuration:    domain.FormatDuration(d.Stats.TotalMinutes),
			AvgProgress:      d.Stats.AvgProgress,
		},
	}
}
