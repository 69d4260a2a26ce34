package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/model"
	authutil "github.com/coursemint/api/utils/auth"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/session"
	"github.com/coursemint/api/utils/validation"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	store     database.Storage
	sessions  session.Store
	validator *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store database.Storage, sessions session.Store) *AuthHandler {
	return &AuthHandler{
		store:     store,
		sessions:  sessions,
		validator: validation.NewValidator(),
	}
}

// SignUpRequest represents a user registration request
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"omitempty,max=255"`
}

// SignUp handles user registration. A fresh session cookie is set so
// the user is signed in immediately.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Email = validation.SanitizeString(req.Email)
	req.FullName = validation.SanitizeString(req.FullName)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// Check if user already exists
	if _, err := h.store.GetUserByEmail(req.Email); err == nil {
		return response.Conflict(c, "User with this email already exists")
	} else if !errors.Is(err, database.ErrNotFound) {
		return response.InternalServerError(c, "Failed to create user")
	}

	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
	}
	if err := h.store.CreateUser(&user); err != nil {
		// A concurrent signup can win the race between the existence
		// check above and this insert.
		if errors.Is(err, database.ErrDuplicate) {
			return response.Conflict(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	if err := h.issueSession(c, &user); err != nil {
		return response.InternalServerError(c, "Failed to create session")
	}

	return response.Success(c, fiber.Map{"user": user.Public()})
}

// issueSession creates a server-side session for the user and sets the
// session cookie on the response.
func (h *AuthHandler) issueSession(c *fiber.Ctx, user *model.User) error {
	token, err := h.sessions.Create(c.Context(), session.Data{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(session.TTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}
