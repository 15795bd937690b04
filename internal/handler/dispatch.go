package handler

import (
	"net/http"
	"strconv"

	"absence-tracker/pkg/batch"

	"github.com/gofiber/fiber/v2"
)

const defaultSubject = "Absence notification"

const defaultBody = "Hello {name},\n\n" +
	"Your absence has been recorded for the following dates: {dates}.\n\n" +
	"Please provide a justification.\n\n" +
	"Best regards,\n"

// DispatchNotifications runs the email workflow: one message per roster row,
// successful rows flow into the canonical set with their send date.
func (h *Handler) DispatchNotifications(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "roster file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "could not open roster file",
		})
	}
	defer file.Close()

	roster, err := batch.Read(fileHeader.Filename, file)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	subject := c.FormValue("subject", defaultSubject)
	body := c.FormValue("body", defaultBody)

	result, err := h.dispatch.Run(roster, subject, body)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// ListDispatchRuns returns recent per-recipient dispatch history.
func (h *Handler) ListDispatchRuns(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	entries, err := h.dispatchLog.ListRecent(limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load dispatch history",
		})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
	})
}
