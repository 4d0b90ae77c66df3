package handler

import (
	"bytes"
	"errors"
	"strings"

	"github.com/hannahbenyin498-lang/inventory-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CSVHandler struct {
	service service.CSVService
}

func NewCSVHandler(s service.CSVService) *CSVHandler {
	return &CSVHandler{service: s}
}

// ImportCSV accepts a multipart "file" upload. The API cannot block on
// an interactive prompt, so the conflict policy comes from the
// on_conflict query param (update|skip); omitting it aborts the import
// on the first conflict and rolls everything back.
func (h *CSVHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file provided"})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return c.Status(400).JSON(fiber.Map{"error": "Only CSV files allowed"})
	}

	policy := service.PolicyAsk
	switch c.Query("on_conflict") {
	case "update":
		policy = service.PolicyUpdate
	case "skip":
		policy = service.PolicySkip
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Could not read file"})
	}
	defer file.Close()

	summary, err := h.service.ImportCSV(file, policy, nil)
	if err != nil {
		if errors.Is(err, service.ErrImportAborted) {
			return c.Status(409).JSON(fiber.Map{
				"error": "Conflicts detected. Retry with on_conflict=update or on_conflict=skip",
			})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

func (h *CSVHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(&buf); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Export failed"})
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=inventory.csv")
	return c.Send(buf.Bytes())
}
