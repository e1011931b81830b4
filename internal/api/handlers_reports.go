package api

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/services"
)

// UploadReport accepts a multipart upload under the "report" field and
// returns the server-generated file name the client should attach to a
// visit. The caller's file name and declared content type carry no
// weight; the stored type is decided by sniffing the bytes.
func (handler *Handler) UploadReport(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("report")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "report file is required")
	}
	if fileHeader.Size > services.MaxReportSize {
		return apiError(c, fiber.StatusBadRequest, services.ErrReportTooLarge.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "report file is not readable")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, services.MaxReportSize+1))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "report file is not readable")
	}

	fileName, err := handler.reportStore.Save(content, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportTooLarge), errors.Is(err, services.ErrReportTypeNotAllowed):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to store report")
		}
	}

	return c.JSON(fiber.Map{"fileName": fileName})
}

func (handler *Handler) DownloadReport(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// Names outside the server's own naming scheme answer the same 404
	// as a missing file; they never reach the filesystem.
	fileName := c.Params("fileName")
	path, err := handler.reportStore.Path(fileName)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "report not found")
	}

	c.Set(fiber.HeaderContentType, services.ContentType(fileName))
	return c.SendFile(path)
}
