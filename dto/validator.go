package dto

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// contactEmailRegex is deliberately permissive: a non-empty local part, one
// "@", and at least one "." inside a non-empty domain. "a@b.c" passes.
var contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("contact_email", validateContactEmail)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return contactEmailRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required", "notblank":
				message = fieldError.Field() + " is required"
			case "contact_email":
				message = "Invalid email"
			case "min":
				message = fieldError.Field() + " must have at least " + fieldError.Param() + " items"
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "url":
				message = fieldError.Field() + " must be a valid URL"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errs = append(errs, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errs
}

type Validator interface {
	Validate() error
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Success: false,
		Error:   "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}
