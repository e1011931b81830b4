package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/services"
)

func (handler *Handler) GetCurrentUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user.Public())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.ProfilePatch{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.authService.UpdateProfile(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrEmailInvalid):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusNotFound, "user not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}
	return c.JSON(updated.Public())
}

// DeleteAccount removes the account with everything it owns and ends
// the current session.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.authService.DeleteAccount(user.ID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
