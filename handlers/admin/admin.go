package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/model"
	"github.com/coursemint/api/utils/middleware"
	"github.com/coursemint/api/utils/response"
)

// AdminHandler handles admin status checks and grants
type AdminHandler struct {
	store database.Storage
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store database.Storage) *AdminHandler {
	return &AdminHandler{store: store}
}

// CheckAdmin handles GET /api/admin/check for the session user.
func (h *AdminHandler) CheckAdmin(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	isAdmin, err := h.store.IsUserAdmin(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to check admin status")
	}

	return response.Success(c, fiber.Map{"isAdmin": isAdmin})
}

// CreateAdmin handles POST /api/admin/create. Any signed-in user can
// grant themselves the admin role; the grant takes effect on their next
// request. Meant for development and first-run bootstrap.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	adminRecord := model.Admin{
		UserID: userID,
		Role:   model.RoleAdmin,
	}
	if err := h.store.CreateAdmin(&adminRecord); err != nil {
		return response.InternalServerError(c, "Failed to create admin")
	}

	return response.Created(c, fiber.Map{"admin": adminRecord})
}
