package admin

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/coursemint/api/utils/filevalidation"
	"github.com/coursemint/api/utils/response"
)

// UploadHandler stores admin file uploads on disk under the upload
// directory, which is served statically at /uploads.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload handles POST /api/admin/upload. The multipart part must be
// named "file". Stored names carry a timestamp and a uuid suffix so
// concurrent uploads of the same filename never collide.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file uploaded")
	}

	result := filevalidation.ValidateUpload(file)
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	filename := fmt.Sprintf("file-%d-%s%s",
		time.Now().UnixNano(),
		uuid.New().String()[:8],
		result.Ext,
	)

	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		return response.InternalServerError(c, "Failed to save file")
	}

	return response.Success(c, fiber.Map{
		"url":          "/uploads/" + filename,
		"filename":     filename,
		"originalName": file.Filename,
		"size":         file.Size,
		"mimetype":     file.Header.Get("Content-Type"),
	})
}
