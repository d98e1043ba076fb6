package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
)

type SurveyHandler struct {
	surveySvc SurveyServiceInterface
}

func NewSurveyHandler(surveySvc SurveyServiceInterface) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// @Summary List active survey questions
// @Description Questions shown to visitors, in display order
// @Tags survey
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.SurveyQuestion}
// @Router /api/v1/survey/questions [get]
func (h *SurveyHandler) Questions(c *fiber.Ctx) error {
	questions, err := h.surveySvc.ActiveQuestions()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, questions)
}

// @Summary Submit survey responses
// @Description Store one visitor's batch of survey answers
// @Tags survey
// @Accept json
// @Produce json
// @Param surveyRequest body dto.SubmitSurveyRequest true "Visitor answers"
// @Success 201 {object} shared.Response{data=dto.SubmitSurveyResponse}
// @Failure 400 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /api/v1/survey/responses [post]
func (h *SurveyHandler) SubmitResponses(c *fiber.Ctx) error {
	var req dto.SubmitSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	count, err := h.surveySvc.SubmitResponses(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, dto.SubmitSurveyResponse{Count: count})
}

// @Summary List all survey questions
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=[]model.SurveyQuestion}
// @Router /api/v1/admin/survey/questions [get]
func (h *SurveyHandler) AllQuestions(c *fiber.Ctx) error {
	questions, err := h.surveySvc.AllQuestions()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, questions)
}

// @Summary Create a survey question
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param questionRequest body dto.SurveyQuestionRequest true "Question details"
// @Success 201 {object} shared.Response{data=model.SurveyQuestion}
// @Router /api/v1/admin/survey/questions [post]
func (h *SurveyHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.SurveyQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	question, err := h.surveySvc.CreateQuestion(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, question)
}

// @Summary Update a survey question
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Question ID"
// @Param questionRequest body dto.SurveyQuestionRequest true "Question details"
// @Success 200 {object} shared.Response{data=model.SurveyQuestion}
// @Router /api/v1/admin/survey/questions/{id} [put]
func (h *SurveyHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.SurveyQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	question, err := h.surveySvc.UpdateQuestion(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, question)
}

// @Summary Delete a survey question and its responses
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Question ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/survey/questions/{id} [delete]
func (h *SurveyHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.surveySvc.DeleteQuestion(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}

// @Summary Survey analytics
// @Description Per-question answer tallies plus overall activity
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.SurveyAnalyticsResponse}
// @Router /api/v1/admin/survey/analytics [get]
func (h *SurveyHandler) Analytics(c *fiber.Ctx) error {
	analytics, err := h.surveySvc.Analytics()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, analytics)
}
