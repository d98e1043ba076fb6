package services

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockLimiterStore struct {
	result      *dto.RateLimitResult
	err         error
	calls       int
	identifiers []string
}

func (m *mockLimiterStore) Consume(ctx context.Context, identifier string) (*dto.RateLimitResult, error) {
	m.calls++
	m.identifiers = append(m.identifiers, identifier)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestCheckRateLimit_NilLimiterAllows(t *testing.T) {
	svc := &RateLimitService{}

	verdict := svc.CheckRateLimit(context.Background(), nil, "203.0.113.9")

	assert.True(t, verdict.Allowed)
	assert.Nil(t, verdict.RetryAfterSeconds)
}

func TestCheckRateLimit_AllowedConsumesOnce(t *testing.T) {
	svc := &RateLimitService{}
	store := &mockLimiterStore{
		result: &dto.RateLimitResult{
			Allowed:   true,
			Remaining: 4,
			ResetAt:   time.Now().Add(time.Hour),
		},
	}

	verdict := svc.CheckRateLimit(context.Background(), store, "203.0.113.9")

	assert.True(t, verdict.Allowed)
	assert.Nil(t, verdict.RetryAfterSeconds)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, []string{"203.0.113.9"}, store.identifiers)
}

func TestCheckRateLimit_DeniedReportsRetryAfter(t *testing.T) {
	svc := &RateLimitService{}
	store := &mockLimiterStore{
		result: &dto.RateLimitResult{
			Allowed:   false,
			Remaining: 0,
			ResetAt:   time.Now().Add(30 * time.Minute),
		},
	}

	verdict := svc.CheckRateLimit(context.Background(), store, "203.0.113.9")

	assert.False(t, verdict.Allowed)
	require.NotNil(t, verdict.RetryAfterSeconds)
	assert.Greater(t, *verdict.RetryAfterSeconds, 0)
	assert.InDelta(t, 1800, *verdict.RetryAfterSeconds, 2)
}

func TestCheckRateLimit_RetryAfterNeverBelowOne(t *testing.T) {
	svc := &RateLimitService{}
	store := &mockLimiterStore{
		result: &dto.RateLimitResult{
			Allowed: false,
			ResetAt: time.Now().Add(-time.Second),
		},
	}

	verdict := svc.CheckRateLimit(context.Background(), store, "203.0.113.9")

	assert.False(t, verdict.Allowed)
	require.NotNil(t, verdict.RetryAfterSeconds)
	assert.Equal(t, 1, *verdict.RetryAfterSeconds)
}

func TestCheckRateLimit_StoreErrorFailsOpen(t *testing.T) {
	svc := &RateLimitService{}
	store := &mockLimiterStore{err: errors.New("connection refused")}

	verdict := svc.CheckRateLimit(context.Background(), store, "203.0.113.9")

	assert.True(t, verdict.Allowed)
	assert.Nil(t, verdict.RetryAfterSeconds)
	assert.Equal(t, 1, store.calls)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		want      string
	}{
		{"no header", "", "127.0.0.1"},
		{"single address", "203.0.113.9", "203.0.113.9"},
		{"proxy chain takes first", "203.0.113.9, 10.0.0.1, 10.0.0.2", "203.0.113.9"},
		{"leading whitespace", "  203.0.113.9 ,10.0.0.1", "203.0.113.9"},
		{"empty first entry", ",10.0.0.1", "127.0.0.1"},
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ClientIP(c))
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestRateLimitMiddleware_PassesWithoutCounterStore(t *testing.T) {
	svc := &RateLimitService{}

	app := fiber.New()
	app.Post("/submit", svc.RateLimit(CategoryMessages), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/submit", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Retry-After"))
}

func TestRateLimitMiddleware_CountsAcceptedSubmissions(t *testing.T) {
	svc := &RateLimitService{monitoringSvc: &MonitoringService{}}

	app := fiber.New()
	app.Post("/submit", svc.RateLimit(CategoryMessages), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	accepted := submissionsTotal.WithLabelValues(CategoryMessages, "accepted")
	before := testutil.ToFloat64(accepted)

	resp, err := app.Test(httptest.NewRequest("POST", "/submit", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(accepted))
}

func TestRecordSubmission_CountsByCategoryAndOutcome(t *testing.T) {
	monitoringSvc := &MonitoringService{}

	throttled := submissionsTotal.WithLabelValues(CategorySurvey, "throttled")
	before := testutil.ToFloat64(throttled)

	monitoringSvc.RecordSubmission(CategorySurvey, "throttled")
	monitoringSvc.RecordSubmission(CategorySurvey, "throttled")

	assert.Equal(t, before+2, testutil.ToFloat64(throttled))
}
