package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSurveyService struct {
	submitted []dto.SubmitSurveyRequest
	count     int
	err       error
	questions []model.SurveyQuestion
}

func (m *mockSurveyService) ActiveQuestions() ([]model.SurveyQuestion, error) {
	return m.questions, m.err
}
func (m *mockSurveyService) AllQuestions() ([]model.SurveyQuestion, error) { return m.questions, nil }
func (m *mockSurveyService) CreateQuestion(req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error) {
	return nil, nil
}
func (m *mockSurveyService) UpdateQuestion(id string, req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error) {
	return nil, nil
}
func (m *mockSurveyService) DeleteQuestion(id string) error { return nil }
func (m *mockSurveyService) SubmitResponses(req dto.SubmitSurveyRequest) (int, error) {
	m.submitted = append(m.submitted, req)
	return m.count, m.err
}
func (m *mockSurveyService) Analytics() (*dto.SurveyAnalyticsResponse, error) { return nil, nil }

func newSurveyApp(svc SurveyServiceInterface) *fiber.App {
	app := fiber.New()
	h := NewSurveyHandler(svc)
	app.Get("/api/v1/survey/questions", h.Questions)
	app.Post("/api/v1/survey/responses", h.SubmitResponses)
	return app
}

func TestSubmitSurveyResponses_Created(t *testing.T) {
	svc := &mockSurveyService{count: 2}
	app := newSurveyApp(svc)

	status, body := postJSON(t, app, "/api/v1/survey/responses", dto.SubmitSurveyRequest{
		VisitorID: "visitor-abc",
		Locale:    "ar",
		Responses: []dto.SurveyAnswerInput{
			{QuestionID: "q1", Answer: "Developer"},
			{QuestionID: "q2", Answer: "Search engine"},
		},
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["count"])

	require.Len(t, svc.submitted, 1)
	assert.Equal(t, "visitor-abc", svc.submitted[0].VisitorID)
}

func TestSubmitSurveyResponses_EmptyBatchRejected(t *testing.T) {
	svc := &mockSurveyService{}
	app := newSurveyApp(svc)

	status, body := postJSON(t, app, "/api/v1/survey/responses", dto.SubmitSurveyRequest{
		VisitorID: "visitor-abc",
		Responses: []dto.SurveyAnswerInput{},
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, svc.submitted)
}

func TestSubmitSurveyResponses_BlankAnswerRejected(t *testing.T) {
	svc := &mockSurveyService{}
	app := newSurveyApp(svc)

	status, _ := postJSON(t, app, "/api/v1/survey/responses", dto.SubmitSurveyRequest{
		VisitorID: "visitor-abc",
		Responses: []dto.SurveyAnswerInput{
			{QuestionID: "q1", Answer: "   "},
		},
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, svc.submitted)
}
