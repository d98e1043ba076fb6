package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
)

type MessageHandler struct {
	messageSvc MessageServiceInterface
}

func NewMessageHandler(messageSvc MessageServiceInterface) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// @Summary Submit a contact message
// @Description Store a visitor contact message and notify the portfolio owner by email
// @Tags messages
// @Accept json
// @Produce json
// @Param messageRequest body dto.SubmitMessageRequest true "Message details"
// @Success 201 {object} shared.Response{data=dto.SubmitMessageResponse}
// @Failure 400 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /api/v1/messages [post]
func (h *MessageHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	message, err := h.messageSvc.Submit(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, dto.SubmitMessageResponse{
		ID:          message.ID,
		EmailStatus: message.EmailStatus,
	})
}

// @Summary List contact messages
// @Description List stored contact messages, newest first
// @Tags admin
// @Produce json
// @Security Bearer
// @Param unread query bool false "Only unread messages"
// @Success 200 {object} shared.Response{data=[]model.Message}
// @Router /api/v1/admin/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.messageSvc.List(c.QueryBool("unread"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, messages)
}

// @Summary Get a contact message
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Message ID"
// @Success 200 {object} shared.Response{data=model.Message}
// @Router /api/v1/admin/messages/{id} [get]
func (h *MessageHandler) Get(c *fiber.Ctx) error {
	message, err := h.messageSvc.Get(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, message)
}

// @Summary Mark a contact message as read
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Message ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.messageSvc.MarkRead(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}

// @Summary Delete a contact message
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Message ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	if err := h.messageSvc.Delete(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
