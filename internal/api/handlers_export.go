package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportMetricsCSV(c *fiber.Ctx) error {
	output, err := handler.exporter.MetricsCSV()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename("metrics", time.Now().In(handler.location)))
	return c.Send(output)
}

func (handler *Handler) ExportMealsCSV(c *fiber.Ctx) error {
	output, err := handler.exporter.MealsCSV()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename("meals", time.Now().In(handler.location)))
	return c.Send(output)
}

func buildExportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("vitale-%s-%s.csv", kind, now.Format("2006-01-02"))
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
