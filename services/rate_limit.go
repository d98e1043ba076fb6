package services

import (
	gocontext "context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
	log "github.com/sirupsen/logrus"
)

type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex

	redisSvc      *RedisService
	monitoringSvc *MonitoringService
}

// RateLimitConfig describes one submission category.
type RateLimitConfig struct {
	Category    string
	MaxRequests int
	WindowSize  time.Duration
	Description string
}

// LimiterStore is the counter backend for one category. Consume records a
// hit for identifier and reports whether it fit inside the window.
type LimiterStore interface {
	Consume(ctx gocontext.Context, identifier string) (*dto.RateLimitResult, error)
}

const RATE_LIMIT_SVC = "rate_limit_svc"

const (
	CategoryMessages = "messages"
	CategorySurvey   = "survey"
)

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = map[string]*RateLimitConfig{
		CategoryMessages: {
			Category:    CategoryMessages,
			MaxRequests: 5,
			WindowSize:  time.Hour,
			Description: "Contact message submissions",
		},
		CategorySurvey: {
			Category:    CategorySurvey,
			MaxRequests: 3,
			WindowSize:  time.Hour,
			Description: "Survey response submissions",
		},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	if !svc.redisSvc.Enabled() {
		log.Warn("Rate limiting disabled: redis not configured, all submissions allowed")
	}

	return nil
}

// ==================== CORE GATE LOGIC ====================

// Limiter returns the counter store for a category, or nil when counters are
// unavailable (redis unconfigured or unknown category). A nil limiter means
// the gate allows everything.
func (svc *RateLimitService) Limiter(category string) LimiterStore {
	if !svc.redisSvc.Enabled() {
		return nil
	}

	svc.mutex.RLock()
	config, exists := svc.configs[category]
	svc.mutex.RUnlock()

	if !exists {
		return nil
	}

	return &redisLimiterStore{
		redisSvc: svc.redisSvc,
		config:   config,
	}
}

// CheckRateLimit is the submission gate decision. A nil limiter or a store
// failure both resolve to allowed: losing the counter backend must never
// block visitor submissions.
func (svc *RateLimitService) CheckRateLimit(ctx gocontext.Context, limiter LimiterStore, identifier string) dto.RateLimitVerdict {
	if limiter == nil {
		return dto.RateLimitVerdict{Allowed: true}
	}

	result, err := limiter.Consume(ctx, identifier)
	if err != nil {
		log.Printf("Rate limit check error for %s: %v", identifier, err)
		return dto.RateLimitVerdict{Allowed: true}
	}

	if result.Allowed {
		return dto.RateLimitVerdict{Allowed: true}
	}

	retryAfter := int(time.Until(result.ResetAt).Milliseconds()+999) / 1000
	if retryAfter < 1 {
		retryAfter = 1
	}

	return dto.RateLimitVerdict{
		Allowed:           false,
		RetryAfterSeconds: &retryAfter,
	}
}

type redisLimiterStore struct {
	redisSvc *RedisService
	config   *RateLimitConfig
}

func (s *redisLimiterStore) Consume(ctx gocontext.Context, identifier string) (*dto.RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", s.config.Category, identifier)

	count, oldest, err := s.redisSvc.SlidingWindowConsume(ctx, key, s.config.WindowSize)
	if err != nil {
		return nil, err
	}

	remaining := s.config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &dto.RateLimitResult{
		Allowed:   count <= int64(s.config.MaxRequests),
		Remaining: remaining,
		ResetAt:   oldest.Add(s.config.WindowSize),
	}, nil
}

// ==================== MIDDLEWARE ====================

// RateLimit gates a public submission route by client IP.
func (svc *RateLimitService) RateLimit(category string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := ClientIP(c)

		verdict := svc.CheckRateLimit(c.Context(), svc.Limiter(category), identifier)
		if !verdict.Allowed {
			svc.recordSubmission(category, "throttled")
			c.Set("Retry-After", strconv.Itoa(*verdict.RetryAfterSeconds))
			return shared.ResponseTooManyRequests(c, *verdict.RetryAfterSeconds)
		}

		err := c.Next()

		if c.Response().StatusCode() < fiber.StatusBadRequest {
			svc.recordSubmission(category, "accepted")
		}

		return err
	}
}

func (svc *RateLimitService) recordSubmission(category, outcome string) {
	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordSubmission(category, outcome)
	}
}

// ==================== UTILITY FUNCTIONS ====================

// ClientIP takes the first entry of X-Forwarded-For, the address the nearest
// proxy recorded for the client. Without the header every caller shares the
// loopback identifier.
func ClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ip := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if ip != "" {
			return ip
		}
	}

	return "127.0.0.1"
}

// ==================== ADMIN FUNCTIONS ====================

func (svc *RateLimitService) GetRateLimitStats(ctx gocontext.Context) ([]dto.RateLimitStats, error) {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()

	stats := make([]dto.RateLimitStats, 0, len(svc.configs))
	for _, config := range svc.configs {
		entry := dto.RateLimitStats{
			Category:    config.Category,
			MaxRequests: config.MaxRequests,
			WindowSecs:  int(config.WindowSize.Seconds()),
		}

		if svc.redisSvc.Enabled() {
			keys, err := svc.redisSvc.Keys(ctx, fmt.Sprintf("ratelimit:%s:*", config.Category))
			if err != nil {
				return nil, err
			}
			entry.ActiveKeys = int64(len(keys))
		}

		stats = append(stats, entry)
	}

	return stats, nil
}

func (svc *RateLimitService) ResetRateLimit(ctx gocontext.Context, category, identifier string) error {
	if !svc.redisSvc.Enabled() {
		return nil
	}

	return svc.redisSvc.Delete(ctx, fmt.Sprintf("ratelimit:%s:%s", category, identifier))
}
