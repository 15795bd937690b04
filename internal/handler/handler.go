package handler

import (
	"time"

	"absence-tracker/internal/repository"
	"absence-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	ingest      *service.IngestionService
	editor      *service.EditorService
	dispatch    *service.DispatchService
	stats       *service.StatsService
	dispatchLog repository.DispatchLogRepository
}

func NewHandler(
	ingest *service.IngestionService,
	editor *service.EditorService,
	dispatch *service.DispatchService,
	stats *service.StatsService,
	dispatchLog repository.DispatchLogRepository,
) *Handler {
	return &Handler{
		ingest:      ingest,
		editor:      editor,
		dispatch:    dispatch,
		stats:       stats,
		dispatchLog: dispatchLog,
	}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Get("/records", h.ListRecords)
	api.Post("/records/upload", h.UploadBatch)
	api.Put("/records/:date", h.EditRecord)
	api.Post("/records/save", h.SaveRecords)
	api.Get("/justifications", h.ListJustifications)
	api.Post("/dispatch", h.DispatchNotifications)
	api.Get("/dispatch/runs", h.ListDispatchRuns)
	api.Get("/summary", h.Summary)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "OK",
		"server_time": time.Now().Format(time.RFC3339),
	})
}
