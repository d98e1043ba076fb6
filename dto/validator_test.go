package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessageRequest() SubmitMessageRequest {
	return SubmitMessageRequest{
		SenderName:  "Huda",
		SenderEmail: "huda@example.com",
		ServiceType: "MVP",
		Budget:      "$5k",
		Body:        "I need a prototype for my idea.",
		Locale:      "en",
	}
}

func TestSubmitMessageRequest_Valid(t *testing.T) {
	require.NoError(t, validMessageRequest().Validate())
}

func TestSubmitMessageRequest_EmailBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"minimal address accepted", "a@b.c", false},
		{"normal address accepted", "dev@studio.io", false},
		{"missing at sign rejected", "ab.c", true},
		{"missing dot after at rejected", "a@bc", true},
		{"blank rejected", "   ", true},
		{"whitespace inside rejected", "a b@c.d", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMessageRequest()
			req.SenderEmail = tt.email

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitMessageRequest_RequiredFields(t *testing.T) {
	t.Run("blank sender name", func(t *testing.T) {
		req := validMessageRequest()
		req.SenderName = "   "
		assert.Error(t, req.Validate())
	})

	t.Run("blank body", func(t *testing.T) {
		req := validMessageRequest()
		req.Body = ""
		assert.Error(t, req.Validate())
	})

	t.Run("missing budget is fine", func(t *testing.T) {
		req := validMessageRequest()
		req.Budget = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown locale rejected", func(t *testing.T) {
		req := validMessageRequest()
		req.Locale = "fr"
		assert.Error(t, req.Validate())
	})
}

func TestSubmitSurveyRequest_Validate(t *testing.T) {
	valid := SubmitSurveyRequest{
		VisitorID: "visitor-1",
		Locale:    "ar",
		Responses: []SurveyAnswerInput{
			{QuestionID: "q1", Answer: "Google search"},
		},
	}
	require.NoError(t, valid.Validate())

	t.Run("missing visitor id", func(t *testing.T) {
		req := valid
		req.VisitorID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("empty responses", func(t *testing.T) {
		req := valid
		req.Responses = nil
		assert.Error(t, req.Validate())
	})

	t.Run("blank answer", func(t *testing.T) {
		req := valid
		req.Responses = []SurveyAnswerInput{{QuestionID: "q1", Answer: "  "}}
		assert.Error(t, req.Validate())
	})
}

func TestFormatValidationErrors(t *testing.T) {
	req := SubmitMessageRequest{SenderEmail: "nope"}

	err := req.Validate()
	require.Error(t, err)

	errs := FormatValidationErrors(err)
	assert.NotEmpty(t, errs)
	for _, fieldErr := range errs {
		assert.NotEmpty(t, fieldErr.Field)
		assert.NotEmpty(t, fieldErr.Message)
	}
}
