package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/services"
)

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := handler.parseOptionalDayParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseOptionalDayParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	entries, err := handler.diaryService.ListRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.diaryService.Get(user.ID, day)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			// An empty date is steady state for a diary, not a failure.
			return apiError(c, fiber.StatusNotFound, "no entry for this date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	return c.JSON(entry)
}

type createEntryRequest struct {
	Date string `json:"date"`
	services.EntryPatch
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := createEntryRequest{}
	if err := json.Unmarshal(c.Body(), &request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	day, err := handler.parseDayParam(request.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.diaryService.Create(user.ID, day, request.EntryPatch, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryExists):
			return apiConflict(c, "entry already exists for this date", "entry", entry)
		case errors.Is(err, services.ErrEntryLoadFailed), errors.Is(err, services.ErrEntrySaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := services.EntryPatch{}
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.diaryService.Update(user.ID, day, input, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return apiError(c, fiber.StatusNotFound, "no entry for this date")
		case errors.Is(err, services.ErrEntryLoadFailed), errors.Is(err, services.ErrEntrySaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
		default:
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.diaryService.Delete(user.ID, day); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "no entry for this date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) MeasurementHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := handler.parseOptionalDayParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseOptionalDayParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	points, err := handler.diaryService.MeasurementHistory(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch measurements")
	}
	return c.JSON(points)
}
