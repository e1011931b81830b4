package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/services"
)

type registerRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	request := registerRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "username, email, and password are required")
	}

	user, err := handler.authService.Register(services.RegisterInput{
		Username:    request.Username,
		Email:       request.Email,
		Password:    request.Password,
		DisplayName: request.DisplayName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUserSaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "registration failed")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	session, err := handler.sessionService.Create(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, session)

	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	request := loginRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	user, err := handler.authService.Authenticate(request.Username, request.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	session, err := handler.sessionService.Create(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, session)

	return c.JSON(user.Public())
}

// Logout revokes whatever session the cookie names. A request without a
// valid session still succeeds; logout is idempotent.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.sessionService.Destroy(c.Cookies(sessionCookieName)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "logout failed")
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
