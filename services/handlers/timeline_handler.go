package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
)

type TimelineHandler struct {
	timelineSvc TimelineServiceInterface
}

func NewTimelineHandler(timelineSvc TimelineServiceInterface) *TimelineHandler {
	return &TimelineHandler{timelineSvc: timelineSvc}
}

// @Summary List timeline entries
// @Tags timeline
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.TimelineEntry}
// @Router /api/v1/timeline [get]
func (h *TimelineHandler) List(c *fiber.Ctx) error {
	entries, err := h.timelineSvc.List()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, entries)
}

// @Summary Create a timeline entry
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param entryRequest body dto.TimelineEntryRequest true "Entry details"
// @Success 201 {object} shared.Response{data=model.TimelineEntry}
// @Router /api/v1/admin/timeline [post]
func (h *TimelineHandler) Create(c *fiber.Ctx) error {
	var req dto.TimelineEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	entry, err := h.timelineSvc.Create(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, entry)
}

// @Summary Update a timeline entry
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Param entryRequest body dto.TimelineEntryRequest true "Entry details"
// @Success 200 {object} shared.Response{data=model.TimelineEntry}
// @Router /api/v1/admin/timeline/{id} [put]
func (h *TimelineHandler) Update(c *fiber.Ctx) error {
	var req dto.TimelineEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	entry, err := h.timelineSvc.Update(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, entry)
}

// @Summary Delete a timeline entry
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/timeline/{id} [delete]
func (h *TimelineHandler) Delete(c *fiber.Ctx) error {
	if err := h.timelineSvc.Delete(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
