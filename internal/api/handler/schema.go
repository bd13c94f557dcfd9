package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin student"`
}

type courseRequest struct {
	Title           string  `json:"title"            validate:"required"`
	Description     string  `json:"description"`
	Instructor      string  `json:"instructor"       validate:"required"`
	Category        string  `json:"category"         validate:"required"`
	Difficulty      string  `json:"difficulty"       validate:"required,oneof=beginner intermediate advanced"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Price           float64 `json:"price"            validate:"gte=0"`
}

type lessonRequest struct {
	Title           string `json:"title"            validate:"required"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"        validate:"omitempty,url"`
	Content         string `json:"content"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
}

type enrollRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// --- Response types ---
// Response types are owned by the transport layer so the JSON contract is not
// coupled to domain changes.

type identityResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// sessionResponse tells the caller who is signed in and where to navigate.
type sessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *identityResponse `json:"user,omitempty"`
	View          string            `json:"view"`
	Redirect      string            `json:"redirect"`
}

type lessonResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url,omitempty"`
	Content         string `json:"content,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
	Order           int    `json:"order"`
}

type courseResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Thumbnail       string           `json:"thumbnail,omitempty"`
	Instructor      string           `json:"instructor"`
	Category        string           `json:"category"`
	Difficulty      string           `json:"difficulty"`
	DurationMinutes int              `json:"duration_minutes"`
	Duration        string           `json:"duration"`
	Price           float64          `json:"price"`
	Rating          float64          `json:"rating"`
	EnrolledCount   int              `json:"enrolled_count"`
	CreatedAt       time.Time        `json:"created_at"`
	Lessons         []lessonResponse `json:"lessons"`
}

type queryResponse struct {
	Query      string `json:"q"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Sort       string `json:"sort"`
}

type listCoursesResponse struct {
	Data  []courseResponse `json:"data"`
	Total int              `json:"total"`
	Query queryResponse    `json:"query"`
}

type categoriesResponse struct {
	Data []string `json:"data"`
}

type catalogStatsResponse struct {
	TotalCourses  int     `json:"total_courses"`
	TotalStudents int     `json:"total_students"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRating     float64 `json:"avg_rating"`
}

type enrollmentResponse struct {
	CourseID         string     `json:"course_id"`
	Progress         int        `json:"progress"`
	CompletedLessons []string   `json:"completed_lessons"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

type enrolledCourseResponse struct {
	Course     courseResponse     `json:"course"`
	Enrollment enrollmentResponse `json:"enrollment"`
}

type studentStatsResponse struct {
	TotalCourses     int    `json:"total_courses"`
	CompletedCourses int    `json:"completed_courses"`
	TotalMinutes     int    `json:"total_minutes"`
	TotalDuration    string `json:"total_duration"`
	AvgProgress      int    `json:"avg_progress"`
}

type dashboardResponse struct {
	User    identityResponse         `json:"user"`
	Courses []enrolledCourseResponse `json:"courses"`
	Stats   studentStatsResponse     `json:"stats"`
}
