package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the session cookie to a user and stashes both
// on the request context. Everything behind it can assume an identity.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	session, err := handler.sessionService.Resolve(c.Cookies(sessionCookieName), time.Now())
	if err != nil {
		handler.clearSessionCookie(c)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.GetUser(session.UserID)
	if err != nil {
		// The account is gone but a cookie survived; revoke it.
		_ = handler.sessionService.Destroy(session.ID)
		handler.clearSessionCookie(c)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
