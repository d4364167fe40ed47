package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"vitale/internal/services"
)

// importPreviewRows caps how many data rows the preview response echoes back.
const importPreviewRows = 5

func (handler *Handler) PreviewImport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read upload")
	}
	defer file.Close()

	table, mapping, err := handler.importer.Stage(file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoRecognizedColumns):
			return apiError(c, fiber.StatusUnprocessableEntity, "no recognized columns in file")
		case errors.Is(err, services.ErrEmptyFile):
			return apiError(c, fiber.StatusBadRequest, "file has no header row")
		default:
			return apiError(c, fiber.StatusBadRequest, "failed to parse csv")
		}
	}

	preview := table.Rows
	if len(preview) > importPreviewRows {
		preview = preview[:importPreviewRows]
	}

	token := handler.pending.StageImport(table, mapping, time.Now())
	return c.JSON(fiber.Map{
		"token":      token,
		"headers":    table.Headers,
		"columns":    mapping,
		"recognized": services.RecognizedColumns(table, mapping),
		"row_count":  len(table.Rows),
		"preview":    preview,
	})
}

func (handler *Handler) CommitImport(c *fiber.Ctx) error {
	input := pendingTokenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	table, mapping, ok := handler.pending.TakeImport(strings.TrimSpace(input.Token), time.Now())
	if !ok {
		return apiError(c, fiber.StatusNotFound, "pending import not found")
	}

	report, err := handler.importer.Commit(table, mapping)
	if err != nil {
		// Rows upserted before the failure stay; the report says which.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to store metrics",
			"report": report,
		})
	}
	return c.JSON(report)
}

func (handler *Handler) CancelImport(c *fiber.Ctx) error {
	if !handler.pending.DropImport(c.Params("token"), time.Now()) {
		return apiError(c, fiber.StatusNotFound, "pending import not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
