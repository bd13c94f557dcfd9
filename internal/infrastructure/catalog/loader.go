// Package catalog holds the in-memory catalog collaborator: the seed dataset,
// a YAML loader for external catalogs, and the repositories the services use.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edulearn/marketplace/internal/core/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type catalogFile struct {
	Courses []courseRecord `yaml:"courses"`
}

type lessonRecord struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	VideoURL        string `yaml:"video_url"`
	Content         string `yaml:"content"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Order           int    `yaml:"order"`
}

type courseRecord struct {
	ID              string         `yaml:"id"`
	Title           string         `yaml:"title"`
	Description     string         `yaml:"description"`
	Thumbnail       string         `yaml:"thumbnail"`
	Instructor      string         `yaml:"instructor"`
	Category        string         `yaml:"category"`
	Difficulty      string         `yaml:"difficulty"`
	DurationMinutes int            `yaml:"duration_minutes"`
	Price           float64        `yaml:"price"`
	Rating          float64        `yaml:"rating"`
	EnrolledCount   int            `yaml:"enrolled_count"`
	CreatedAt       time.Time      `yaml:"created_at"`
	Lessons         []lessonRecord `yaml:"lessons"`
}

// Seed returns the built-in catalog.
func Seed() ([]domain.Course, error) {
	return Parse(seedYAML)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) ([]domain.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates every course. Course ids must be
// present and unique.
func Parse(data []byte) ([]domain.Course, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Courses))
	out := make([]domain.Course, 0, len(f.Courses))
	for i, rec := range f.Courses {
		c := rec.toDomain()
		if c.ID == "" {
			return nil, fmt.Errorf("catalog course #%d: %w: id is required", i+1, domain.ErrInvalidCourse)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("catalog course %q: %w: duplicate id", c.ID, domain.ErrInvalidCourse)
		}
		seen[c.ID] = struct{}{}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog course %q: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (r courseRecord) toDomain() domain.Course {
	lessons := make([]domain.Lesson, len(r.Lessons))
	for i, l := range r.Lessons {
		lessons[i] = domain.Lesson{
			ID:              l.ID,
			CourseID:        r.ID,
			Title:           l.Title,
			Description:     l.Description,
			VideoURL:        l.VideoURL,
			Content:         l.Content,
			DurationMinutes: l.DurationMinutes,
			Order:           l.Order,
		}
	}
	return domain.Course{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Thumbnail:       r.Thumbnail,
		Instructor:      r.Instructor,
		Category:        r.Category,
		Difficulty:      domain.Difficulty(r.Difficulty),
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Rating:          r.Rating,
		EnrolledCount:   r.EnrolledCount,
		CreatedAt:       r.CreatedAt.UTC(),
		Lessons:         domain.SortLessons(lessons),
	}
}
