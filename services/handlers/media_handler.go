package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// @Summary Upload an image
// @Description Store an image for projects or timeline entries. Max 5MB, JPEG/PNG/WebP/GIF/SVG.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Failure 400 {object} shared.Response
// @Router /api/v1/admin/upload [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return shared.ResponseBadRequest(c, "Missing file")
	}

	resp, err := h.mediaSvc.UploadImage(fileHeader, c.FormValue("folder"))
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, resp)
}

// @Summary Delete an uploaded image
// @Tags admin
// @Produce json
// @Security Bearer
// @Param filename query string true "Stored object name"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/upload [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return shared.ResponseBadRequest(c, "Missing filename")
	}

	if err := h.mediaSvc.DeleteImage(filename); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
