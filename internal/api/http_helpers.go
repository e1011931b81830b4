package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// apiConflict returns a 409 carrying the pre-existing resource under the
// given key, so the client can switch to an update without a second
// round trip.
func apiConflict(c *fiber.Ctx, message string, key string, existing any) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": message,
		key:     existing,
	})
}

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, session models.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}
