package middleware

import (
	"errors"

	"github.com/coursemint/api/database"
	"github.com/coursemint/api/utils/response"
	"github.com/coursemint/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware resolves the session cookie into request-scoped
// user identity and composes the two authorization gates.
type SessionMiddleware struct {
	sessions session.Store
	store    database.Storage
}

// NewSessionMiddleware creates a session middleware
func NewSessionMiddleware(sessions session.Store, store database.Storage) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		store:    store,
	}
}

// Required rejects requests without a valid session with 401.
func (m *SessionMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return response.Unauthorized(c, "Unauthorized")
		}

		data, err := m.sessions.Get(c.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return response.Unauthorized(c, "Unauthorized")
			}
			return response.InternalServerError(c, "Failed to resolve session")
		}

		c.Locals("user_id", data.UserID)
		c.Locals("user_email", data.Email)

		return c.Next()
	}
}

// RequireAdmin rejects sessions without an admin grant with 403. It is
// chained after Required. The grant is re-checked on every request, so
// a fresh grant takes effect on the next call with no cache to
// invalidate.
func (m *SessionMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		isAdmin, err := m.store.IsUserAdmin(userID)
		if err != nil {
			return response.InternalServerError(c, "Failed to check admin status")
		}
		if !isAdmin {
			return response.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *fiber.Ctx) (string, bool) {
	email := c.Locals("user_email")
	if email == nil {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}
