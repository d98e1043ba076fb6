package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
)

type SocialHandler struct {
	socialSvc SocialServiceInterface
}

func NewSocialHandler(socialSvc SocialServiceInterface) *SocialHandler {
	return &SocialHandler{socialSvc: socialSvc}
}

// @Summary List active social links
// @Tags social
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.SocialLink}
// @Router /api/v1/social-links [get]
func (h *SocialHandler) ListActive(c *fiber.Ctx) error {
	links, err := h.socialSvc.ListActive()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, links)
}

// @Summary List all social links
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=[]model.SocialLink}
// @Router /api/v1/admin/social-links [get]
func (h *SocialHandler) ListAll(c *fiber.Ctx) error {
	links, err := h.socialSvc.ListAll()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, links)
}

// @Summary Create a social link
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param linkRequest body dto.SocialLinkRequest true "Link details"
// @Success 201 {object} shared.Response{data=model.SocialLink}
// @Router /api/v1/admin/social-links [post]
func (h *SocialHandler) Create(c *fiber.Ctx) error {
	var req dto.SocialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	link, err := h.socialSvc.Create(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, link)
}

// @Summary Update a social link
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Link ID"
// @Param linkRequest body dto.SocialLinkRequest true "Link details"
// @Success 200 {object} shared.Response{data=model.SocialLink}
// @Router /api/v1/admin/social-links/{id} [put]
func (h *SocialHandler) Update(c *fiber.Ctx) error {
	var req dto.SocialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	link, err := h.socialSvc.Update(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, link)
}

// @Summary Delete a social link
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Link ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/social-links/{id} [delete]
func (h *SocialHandler) Delete(c *fiber.Ctx) error {
	if err := h.socialSvc.Delete(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
