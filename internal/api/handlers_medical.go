package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/services"
)

func (handler *Handler) GetMedicalInfo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	info, err := handler.medicalService.Get(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrMedicalInfoNotFound) {
			return apiError(c, fiber.StatusNotFound, "no medical info yet")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch medical info")
	}
	return c.JSON(info)
}

func (handler *Handler) CreateMedicalInfo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.MedicalInfoPatch{}
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	info, err := handler.medicalService.Create(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMedicalInfoExists):
			return apiConflict(c, "medical info already exists", "info", info)
		case errors.Is(err, services.ErrMedicalInfoSaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save medical info")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

func (handler *Handler) UpdateMedicalInfo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.MedicalInfoPatch{}
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	info, err := handler.medicalService.Update(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMedicalInfoNotFound):
			return apiError(c, fiber.StatusNotFound, "no medical info yet")
		case errors.Is(err, services.ErrMedicalInfoSaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save medical info")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(info)
}
