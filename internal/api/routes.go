package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/register", handler.Register)
	api.Post("/login", handler.Login)
	api.Post("/logout", handler.Logout)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("", handler.GetCurrentUser)
	user.Put("", handler.UpdateProfile)
	user.Delete("", handler.DeleteAccount)

	diary := api.Group("/diary", handler.AuthRequired)
	diary.Get("", handler.ListEntries)
	diary.Post("", handler.CreateEntry)
	diary.Get("/:date", handler.GetEntry)
	diary.Put("/:date", handler.UpdateEntry)
	diary.Delete("/:date", handler.DeleteEntry)

	medical := api.Group("/medical-info", handler.AuthRequired)
	medical.Get("", handler.GetMedicalInfo)
	medical.Post("", handler.CreateMedicalInfo)
	medical.Put("", handler.UpdateMedicalInfo)

	api.Get("/measurements", handler.AuthRequired, handler.MeasurementHistory)

	api.Post("/upload-report", handler.AuthRequired, handler.UploadReport)
	api.Get("/reports/:fileName", handler.AuthRequired, handler.DownloadReport)
}
