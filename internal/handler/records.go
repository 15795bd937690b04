package handler

import (
	"errors"
	"net/http"

	"absence-tracker/internal/repository"
	"absence-tracker/internal/service"
	"absence-tracker/pkg/batch"
	"absence-tracker/pkg/classify"

	"github.com/gofiber/fiber/v2"
)

// ListRecords returns the current projection as a renderable table.
func (h *Handler) ListRecords(c *fiber.Ctx) error {
	set := h.ingest.Projection()
	return c.JSON(fiber.Map{
		"columns": set.Columns,
		"rows":    set.Rows(),
	})
}

// UploadBatch ingests a CSV or Excel batch uploaded as multipart form data.
func (h *Handler) UploadBatch(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "could not open uploaded file",
		})
	}
	defer file.Close()

	incoming, err := batch.Read(fileHeader.Filename, file)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	merged, err := h.ingest.Ingest(incoming)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrStoreUnreadable) {
			status = http.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ingested": incoming.Len(),
		"total":    merged.Len(),
		"columns":  merged.Columns,
		"rows":     merged.Rows(),
	})
}

type editRequest struct {
	DateOfResponse string `json:"date_of_response"`
	Justification  string `json:"justificative"`
}

// EditRecord annotates the row keyed by its absence-date value. The change
// is memory-only until /api/records/save.
func (h *Handler) EditRecord(c *fiber.Ctx) error {
	var req editRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid payload",
		})
	}

	rec, err := h.editor.ApplyEdit(h.ingest.Projection(), c.Params("date"), req.DateOfResponse, req.Justification)
	if errors.Is(err, service.ErrMissingField) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if errors.Is(err, service.ErrRowNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rec)
}

// SaveRecords persists the projection after a round of edits.
func (h *Handler) SaveRecords(c *fiber.Ctx) error {
	if err := h.ingest.Save(); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"saved": h.ingest.Projection().Len(),
	})
}

// ListJustifications exposes the closed set of accepted phrases.
func (h *Handler) ListJustifications(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"justifications": classify.Known(),
	})
}

// Summary returns the dashboard aggregates for the current projection.
func (h *Handler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.stats.Summarize(h.ingest.Projection()))
}
