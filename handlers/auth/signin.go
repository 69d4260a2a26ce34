package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	authutil "github.com/coursemint/api/utils/auth"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/validation"
)

// SignInRequest represents a login request
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn authenticates a user and sets a fresh session cookie. Unknown
// email and wrong password return the same message so the endpoint
// cannot be used to probe for accounts.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to sign in")
	}

	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	if err := h.issueSession(c, user); err != nil {
		return response.InternalServerError(c, "Failed to create session")
	}

	return response.Success(c, fiber.Map{"user": user.Public()})
}
