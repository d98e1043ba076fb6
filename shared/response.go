package shared

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	RetryAfter *int        `json:"retryAfter,omitempty"`
}

var jsonAPI = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

var (
	successResponse       = mustMarshal(Response{Success: true})
	badRequestResponse    = mustMarshal(Response{Success: false, Error: "Bad request"})
	unauthorizedResponse  = mustMarshal(Response{Success: false, Error: "Unauthorized"})
	forbiddenResponse     = mustMarshal(Response{Success: false, Error: "Forbidden"})
	notFoundResponse      = mustMarshal(Response{Success: false, Error: "Not found"})
	internalErrorResponse = mustMarshal(Response{Success: false, Error: "Internal server error"})
)

func mustMarshal(v interface{}) []byte {
	b, _ := jsonAPI.Marshal(v)
	return b
}

func writeJSON(c *fiber.Ctx, httpCode int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(httpCode).Send(body)
}

// ResponseJSON writes a success envelope with the given payload.
func ResponseJSON(c *fiber.Ctx, httpCode int, data interface{}) error {
	if data == nil && httpCode == http.StatusOK {
		return writeJSON(c, httpCode, successResponse)
	}

	body, err := jsonAPI.Marshal(Response{Success: true, Data: data})
	if err != nil {
		return writeJSON(c, http.StatusInternalServerError, internalErrorResponse)
	}
	return writeJSON(c, httpCode, body)
}

func ResponseOK(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, http.StatusOK, data)
}

func ResponseCreated(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, http.StatusCreated, data)
}

// ResponseError writes a failure envelope with the given message.
func ResponseError(c *fiber.Ctx, httpCode int, message string) error {
	if message == "" {
		switch httpCode {
		case http.StatusBadRequest:
			return writeJSON(c, httpCode, badRequestResponse)
		case http.StatusUnauthorized:
			return writeJSON(c, httpCode, unauthorizedResponse)
		case http.StatusForbidden:
			return writeJSON(c, httpCode, forbiddenResponse)
		case http.StatusNotFound:
			return writeJSON(c, httpCode, notFoundResponse)
		case http.StatusInternalServerError:
			return writeJSON(c, httpCode, internalErrorResponse)
		}
	}

	body, err := jsonAPI.Marshal(Response{Success: false, Error: message})
	if err != nil {
		return writeJSON(c, http.StatusInternalServerError, internalErrorResponse)
	}
	return writeJSON(c, httpCode, body)
}

func ResponseBadRequest(c *fiber.Ctx, message string) error {
	return ResponseError(c, http.StatusBadRequest, message)
}

func ResponseUnauthorized(c *fiber.Ctx) error {
	return ResponseError(c, http.StatusUnauthorized, "")
}

func ResponseNotFound(c *fiber.Ctx, message string) error {
	return ResponseError(c, http.StatusNotFound, message)
}

func ResponseInternalError(c *fiber.Ctx) error {
	return ResponseError(c, http.StatusInternalServerError, "")
}

// ResponseTooManyRequests writes the throttled envelope with a Retry-After
// header and the retryAfter field in seconds.
func ResponseTooManyRequests(c *fiber.Ctx, retryAfter int) error {
	body, err := jsonAPI.Marshal(Response{
		Success:    false,
		Error:      "Too many requests",
		RetryAfter: &retryAfter,
	})
	if err != nil {
		return writeJSON(c, http.StatusInternalServerError, internalErrorResponse)
	}
	return writeJSON(c, http.StatusTooManyRequests, body)
}
