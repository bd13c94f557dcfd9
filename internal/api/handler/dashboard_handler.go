package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/pkg/metrics"
)

// DashboardHandler serves the student dashboard.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /dashboard.
//
// @Summary      Student dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	d, err := h.dashboard.Dashboard(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(id, d))
}

// Enroll handles POST /dashboard/enrollments.
//
// @Summary      Enroll in a course
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      enrollRequest  true  "Course to enroll in"
// @Success      201   {object}  enrollmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /dashboard/enrollments [post]
func (h *DashboardHandler) Enroll(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req enrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	e, err := h.dashboard.Enroll(c.Request().Context(), id.ID, req.CourseID)
	if err != nil {
		return err
	}

	metrics.EnrollmentsTotal.Inc()
	return c.JSON(http.StatusCreated, toEnrollmentResponse(*e))
}

// CompleteLesson handles POST /dashboard/enrollments/:course_id/lessons/:lesson_id/complete.
//
// @Summary      Mark a lesson complete
// @Tags         dashboard
// @Produce      json
// @Param        course_id  path      string  true  "Course id"
// @Param        lesson_id  path      string  true  "Lesson id"
// @Success      200        {object}  enrollmentResponse
// @Failure      404        {object}  errorResponse
// @Router       /dashboard/enrollments/{course_id}/lessons/{lesson_id}/complete [post]
func (h *DashboardHandler) CompleteLesson(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	e, err := h.dashboard.CompleteLesson(c.Request().Context(), id.ID, c.Param("course_id"), c.Param("lesson_id"))
	if err != nil {
		return err
	}

	metrics.LessonsCompletedTotal.Inc()
	return c.JSON(http.StatusOK, toEnrollmentResponse(*e))
}
