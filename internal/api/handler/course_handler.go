package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/pkg/metrics"
)

// CourseHandler serves the public catalog.
type CourseHandler struct {
	catalog ports.CatalogService
}

func NewCourseHandler(catalog ports.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// List handles GET /courses.
//
// @Summary      Browse the catalog
// @Tags         courses
// @Produce      json
// @Param        q           query     string  false  "Case-insensitive match on title or description"
// @Param        category    query     string  false  "Category, or all"
// @Param        difficulty  query     string  false  "beginner, intermediate, advanced, or all"
// @Param        sort        query     string  false  "popular, rating, price-ascending, price-descending"
// @Success      200         {object}  listCoursesResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	state := domain.QueryState{
		Query:      c.QueryParam("q"),
		Category:   c.QueryParam("category"),
		Difficulty: c.QueryParam("difficulty"),
		SortBy:     domain.SortMode(c.QueryParam("sort")),
	}.Normalize()

	courses, err := h.catalog.Browse(c.Request().Context(), state)
	if err != nil {
		return err
	}

	metrics.CourseQueriesTotal.WithLabelValues(string(state.SortBy)).Inc()
	metrics.CourseQueryResults.Observe(float64(len(courses)))
	return c.JSON(http.StatusOK, toListResponse(courses, state))
}

// Categories handles GET /courses/categories.
//
// @Summary      List category filter options
// @Tags         courses
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /courses/categories [get]
func (h *CourseHandler) Categories(c echo.Context) error {
	cats, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Data: cats})
}

// Get handles GET /courses/:id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.catalog.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(*course))
}
