package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/edulearn/marketplace/internal/core/domain"
)

func TestCourseHandler_List_PassesNormalizedQuery(t *testing.T) {
	var got domain.QueryState
	stub := &stubCatalog{
		browseFn: func(_ context.Context, state domain.QueryState) ([]domain.Course, error) {
			got = state
			return []domain.Course{{ID: "1", Title: "Go", DurationMinutes: 90, Difficulty: domain.DifficultyBeginner}}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/courses?q=go&difficulty=beginner&sort=price-low", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := domain.QueryState{Query: "go", Category: "all", Difficulty: "beginner", SortBy: domain.SortPriceAscending}
	if got != want {
		t.Fatalf("expected state %+v, got %+v", want, got)
	}

	var resp listCoursesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 1 || resp.Data[0].Duration != "1 hour 30 min" || resp.Query.Sort != "price-ascending" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCourseHandler_List_EmptyResult(t *testing.T) {
	stub := &stubCatalog{
		browseFn: func(context.Context, domain.QueryState) ([]domain.Course, error) {
			return []domain.Course{}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/courses?q=cobol", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 0 || resp["total"] != float64(0) {
		t.Fatalf("expected empty data array, got %+v", resp)
	}
}

func TestCourseHandler_Categories(t *testing.T) {
	handler := NewCourseHandler(&stubCatalog{categories: []string{"all", "Design"}})

	c, rec := newTestContext(http.MethodGet, "/courses/categories", "")
	if err := handler.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp categoriesResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Data) != 2 || resp.Data[0] != "all" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCourseHandler_Get_SortsLessons(t *testing.T) {
	stub := &stubCatalog{
		getFn: func(_ context.Context, id string) (*domain.Course, error) {
			return &domain.Course{ID: id, Lessons: []domain.Lesson{
				{ID: "b", Order: 2, DurationMinutes: 60},
				{ID: "a", Order: 1, DurationMinutes: 15},
			}}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/courses/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp courseResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != "7" || resp.Lessons[0].ID != "a" || resp.Lessons[1].Duration != "1 hour" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	stub := &stubCatalog{
		getFn: func(context.Context, string) (*domain.Course, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	handler := NewCourseHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/courses/x", "")
	if err := handler.Get(c); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
