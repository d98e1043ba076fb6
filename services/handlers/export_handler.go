package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	exportSvc ExportServiceInterface
}

func NewExportHandler(exportSvc ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// @Summary Export all data
// @Description Download projects, timeline, social links, messages and survey data as a JSON backup
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/export [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	data, err := h.exportSvc.Snapshot()
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("portfolio-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.JSON(data)
}
