package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExportService struct {
	snapshot map[string]interface{}
	err      error
}

func (m *mockExportService) Snapshot() (map[string]interface{}, error) {
	return m.snapshot, m.err
}

func TestExportDownload(t *testing.T) {
	svc := &mockExportService{
		snapshot: map[string]interface{}{
			"exportedAt": "2026-08-29T00:00:00Z",
			"data": map[string]interface{}{
				"projects": []string{},
				"messages": []string{},
			},
		},
	}

	app := fiber.New()
	h := NewExportHandler(svc)
	app.Get("/api/v1/admin/export", h.Download)

	req := httptest.NewRequest("GET", "/api/v1/admin/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=portfolio-export-")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2026-08-29T00:00:00Z", decoded["exportedAt"])
	assert.Contains(t, decoded, "data")
}
