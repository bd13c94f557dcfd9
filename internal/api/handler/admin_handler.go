package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/pkg/metrics"
)

// AdminHandler serves the admin course management surface.
type AdminHandler struct {
	catalog ports.CatalogService
}

func NewAdminHandler(catalog ports.CatalogService) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// Stats handles GET /admin/stats.
//
// @Summary      Catalog statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  catalogStatsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.catalog.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// CreateCourse handles POST /admin/courses.
//
// @Summary      Add a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      courseRequest  true  "Course details"
// @Success      201   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/courses [post]
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	var req courseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.catalog.CreateCourse(c.Request().Context(), toCourseInput(req))
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toCourseResponse(*course))
}

// UpdateCourse handles PUT /admin/courses/:id.
//
// @Summary      Edit a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Course id"
// @Param        body  body      courseRequest  true  "Course details"
// @Success      200   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/courses/{id} [put]
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	var req courseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.catalog.UpdateCourse(c.Request().Context(), c.Param("id"), toCourseInput(req))
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCourseResponse(*course))
}

// DeleteCourse handles DELETE /admin/courses/:id.
//
// @Summary      Delete a course
// @Tags         admin
// @Param        id   path  string  true  "Course id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /admin/courses/{id} [delete]
func (h *AdminHandler) DeleteCourse(c echo.Context) error {
	if err := h.catalog.DeleteCourse(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// AddLesson handles POST /admin/courses/:id/lessons.
//
// @Summary      Append a lesson
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Course id"
// @Param        body  body      lessonRequest  true  "Lesson details"
// @Success      201   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/courses/{id}/lessons [post]
func (h *AdminHandler) AddLesson(c echo.Context) error {
	var req lessonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.catalog.AddLesson(c.Request().Context(), c.Param("id"), toLessonInput(req))
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("add_lesson").Inc()
	return c.JSON(http.StatusCreated, toCourseResponse(*course))
}
