package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTimelineService struct {
	entries   []model.TimelineEntry
	listCalls int
}

func (m *mockTimelineService) List() ([]model.TimelineEntry, error) {
	m.listCalls++
	return m.entries, nil
}

func (m *mockTimelineService) Create(req dto.TimelineEntryRequest) (*model.TimelineEntry, error) {
	return nil, nil
}

func (m *mockTimelineService) Update(id string, req dto.TimelineEntryRequest) (*model.TimelineEntry, error) {
	return nil, nil
}

func (m *mockTimelineService) Delete(id string) error { return nil }

func TestTimelineList(t *testing.T) {
	svc := &mockTimelineService{entries: []model.TimelineEntry{{ID: "t1"}, {ID: "t2"}}}
	h := NewTimelineHandler(svc)

	app := fiber.New()
	app.Get("/api/v1/timeline", h.List)
	app.Get("/api/v1/admin/timeline", h.List)

	for _, path := range []string{"/api/v1/timeline", "/api/v1/admin/timeline"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, true, decoded["success"])

		entries, ok := decoded["data"].([]interface{})
		require.True(t, ok)
		assert.Len(t, entries, 2)
	}

	assert.Equal(t, 2, svc.listCalls)
}
