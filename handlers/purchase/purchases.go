package purchase

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/utils/middleware"
	"github.com/coursemint/api/utils/response"
)

// PurchaseHandler serves the signed-in user's purchase history
type PurchaseHandler struct {
	store database.Storage
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(store database.Storage) *PurchaseHandler {
	return &PurchaseHandler{store: store}
}

// ListPurchases handles GET /api/purchases. Purchases are scoped to the
// session user; each row carries its course.
func (h *PurchaseHandler) ListPurchases(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	purchases, err := h.store.GetUserPurchases(userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch purchases")
	}

	return response.Success(c, fiber.Map{"purchases": purchases})
}
