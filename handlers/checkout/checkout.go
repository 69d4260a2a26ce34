package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/model"
	"github.com/coursemint/api/services/payment"
	"github.com/coursemint/api/utils/middleware"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/validation"
)

// CheckoutHandler starts Stripe checkout sessions and consumes the
// webhook that settles them. The webhook is the only code path that
// moves a purchase out of pending.
type CheckoutHandler struct {
	store     database.Storage
	provider  payment.Provider
	validator *validation.Validator
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store database.Storage, provider payment.Provider) *CheckoutHandler {
	return &CheckoutHandler{
		store:     store,
		provider:  provider,
		validator: validation.NewValidator(),
	}
}

// CreateCheckoutRequest identifies the course being bought
type CreateCheckoutRequest struct {
	CourseID uint `json:"courseId" validate:"required,min=1"`
}

// CreateCheckout handles POST /api/create-checkout. The amount charged
// always comes from the stored course price, never from the client. A
// pending purchase row is persisted before the redirect URL is handed
// back, keyed by the Stripe session id for the webhook to settle.
func (h *CheckoutHandler) CreateCheckout(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	userEmail, _ := middleware.GetUserEmail(c)

	var req CreateCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	course, err := h.store.GetCourse(req.CourseID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	checkoutSession, err := h.provider.CreateCheckoutSession(c.Context(), payment.CheckoutParams{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		AmountCents: course.Price,
		UserID:      userID,
		UserEmail:   userEmail,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create checkout session")
	}

	sessionID := checkoutSession.ID
	purchase := model.Purchase{
		UserID:          userID,
		CourseID:        course.ID,
		StripeSessionID: &sessionID,
		Amount:          course.Price,
		Status:          model.PurchaseStatusPending,
	}
	if err := h.store.CreatePurchase(&purchase); err != nil {
		return response.InternalServerError(c, "Failed to record purchase")
	}

	return response.Success(c, fiber.Map{"url": checkoutSession.URL})
}
