package dto

import "time"

// RateLimitResult is what a counter store reports for a single consume.
type RateLimitResult struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// RateLimitVerdict is the gate decision handed to handlers. RetryAfterSeconds
// is set only on denial and is always at least 1.
type RateLimitVerdict struct {
	Allowed           bool `json:"allowed"`
	RetryAfterSeconds *int `json:"retryAfterSeconds,omitempty"`
}

type RateLimitStats struct {
	Category    string `json:"category"`
	MaxRequests int    `json:"maxRequests"`
	WindowSecs  int    `json:"windowSecs"`
	ActiveKeys  int64  `json:"activeKeys"`
}
