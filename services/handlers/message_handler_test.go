package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockMessageService struct {
	submitted []dto.SubmitMessageRequest
	result    *model.Message
	err       error
}

func (m *mockMessageService) Submit(req dto.SubmitMessageRequest) (*model.Message, error) {
	m.submitted = append(m.submitted, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockMessageService) List(unreadOnly bool) ([]model.Message, error) { return nil, nil }
func (m *mockMessageService) Get(id string) (*model.Message, error)        { return m.result, nil }
func (m *mockMessageService) MarkRead(id string) error                     { return nil }
func (m *mockMessageService) Delete(id string) error                       { return nil }

func newMessageApp(svc MessageServiceInterface) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
			}
			return shared.ResponseInternalError(c)
		},
	})

	h := NewMessageHandler(svc)
	app.Post("/api/v1/messages", h.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestSubmitMessage_Created(t *testing.T) {
	svc := &mockMessageService{
		result: &model.Message{
			ID:          "01936b2a-0000-7000-8000-000000000001",
			EmailStatus: shared.EmailStatusSent,
		},
	}
	app := newMessageApp(svc)

	status, body := postJSON(t, app, "/api/v1/messages", dto.SubmitMessageRequest{
		SenderName:  "Huda",
		SenderEmail: "huda@example.com",
		ServiceType: "MVP",
		Body:        "I want to build a prototype.",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, svc.result.ID, data["id"])
	assert.Equal(t, "sent", data["emailStatus"])

	require.Len(t, svc.submitted, 1)
	assert.Equal(t, "Huda", svc.submitted[0].SenderName)
}

func TestSubmitMessage_ValidationFails(t *testing.T) {
	svc := &mockMessageService{}
	app := newMessageApp(svc)

	status, body := postJSON(t, app, "/api/v1/messages", dto.SubmitMessageRequest{
		SenderName:  "Huda",
		SenderEmail: "not-an-email",
		ServiceType: "MVP",
		Body:        "hello",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, svc.submitted)
}

func TestSubmitMessage_ServiceErrorMapped(t *testing.T) {
	svc := &mockMessageService{
		err: shared.NewInternalError(nil, "Internal server error"),
	}
	app := newMessageApp(svc)

	status, body := postJSON(t, app, "/api/v1/messages", dto.SubmitMessageRequest{
		SenderName:  "Huda",
		SenderEmail: "huda@example.com",
		ServiceType: "MVP",
		Body:        "hello there",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
}
