package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/session"
)

// SignOut destroys the server-side session and clears the cookie. It is
// a no-op success when no session cookie is present.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			return response.InternalServerError(c, "Failed to sign out")
		}
	}

	clearSessionCookie(c)
	return response.SuccessWithMessage(c, "Signed out", nil)
}

// GetSession reports the current session, or nulls when there is none.
// A session whose user no longer exists is destroyed on the spot.
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	empty := fiber.Map{"user": nil, "session": nil}

	token := c.Cookies(session.CookieName)
	if token == "" {
		return response.Success(c, empty)
	}

	data, err := h.sessions.Get(c.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			clearSessionCookie(c)
			return response.Success(c, empty)
		}
		return response.InternalServerError(c, "Failed to resolve session")
	}

	user, err := h.store.GetUser(data.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// Orphaned session; the user was deleted after sign-in.
			_ = h.sessions.Destroy(c.Context(), token)
			clearSessionCookie(c)
			return response.Success(c, empty)
		}
		return response.InternalServerError(c, "Failed to resolve session")
	}

	return response.Success(c, fiber.Map{
		"user": user.Public(),
		"session": fiber.Map{
			"userId": user.ID,
			"email":  user.Email,
		},
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
