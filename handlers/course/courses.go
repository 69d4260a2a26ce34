package course

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/model"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/validation"
)

// CourseHandler handles course catalog and admin course management
type CourseHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(store database.Storage) *CourseHandler {
	return &CourseHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price" validate:"required,min=0"` // cents
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048"`
	Level       string   `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration    string   `json:"duration" validate:"omitempty,max=50"`
	Features    []string `json:"features" validate:"omitempty,dive,max=500"`
	Instructor  string   `json:"instructor" validate:"required,max=255"`
	Students    int      `json:"students" validate:"omitempty,min=0"`
	VideoURL    string   `json:"video_url" validate:"omitempty,max=2048"`
	PDFURL      string   `json:"pdf_url" validate:"omitempty,max=2048"`
}

// UpdateCourseRequest represents the request body for a partial course
// update. Only fields present in the body are applied.
type UpdateCourseRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string   `json:"description" validate:"omitempty"`
	Price       *int64    `json:"price" validate:"omitempty,min=0"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,max=2048"`
	Level       *string   `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration    *string   `json:"duration" validate:"omitempty,max=50"`
	Features    *[]string `json:"features" validate:"omitempty,dive,max=500"`
	Instructor  *string   `json:"instructor" validate:"omitempty,max=255"`
	Students    *int      `json:"students" validate:"omitempty,min=0"`
	VideoURL    *string   `json:"video_url" validate:"omitempty,max=2048"`
	PDFURL      *string   `json:"pdf_url" validate:"omitempty,max=2048"`
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.store.GetAllCourses()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}
	return response.Success(c, fiber.Map{"courses": courses})
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	course, err := h.store.GetCourse(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, fiber.Map{"course": course})
}

// CreateCourse handles POST /api/admin/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	course := model.Course{
		Title:       validation.SanitizeString(req.Title),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Level:       req.Level,
		Duration:    req.Duration,
		Features:    req.Features,
		Instructor:  validation.SanitizeString(req.Instructor),
		Students:    req.Students,
		VideoURL:    req.VideoURL,
		PDFURL:      req.PDFURL,
	}

	if err := h.store.CreateCourse(&course); err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, fiber.Map{"course": course})
}

// UpdateCourse handles PUT /api/admin/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	updates := model.CourseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Level:       req.Level,
		Duration:    req.Duration,
		Features:    req.Features,
		Instructor:  req.Instructor,
		Students:    req.Students,
		VideoURL:    req.VideoURL,
		PDFURL:      req.PDFURL,
	}

	course, err := h.store.UpdateCourse(id, updates)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.Success(c, fiber.Map{"course": course})
}

// DeleteCourse handles DELETE /api/admin/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	if err := h.store.DeleteCourse(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.SuccessWithMessage(c, "Course deleted", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
