package dto

import "encoding/json"

type SurveyAnswerInput struct {
	QuestionID string `json:"questionId" validate:"notblank"`
	Answer     string `json:"answer" validate:"notblank"`
}

type SubmitSurveyRequest struct {
	VisitorID string              `json:"visitorId" validate:"notblank,max=120"`
	Locale    string              `json:"locale" validate:"omitempty,oneof=ar en"`
	Responses []SurveyAnswerInput `json:"responses" validate:"required,min=1,dive"`
}

func (r SubmitSurveyRequest) Validate() error {
	return validate.Struct(r)
}

type SubmitSurveyResponse struct {
	Count int `json:"count"`
}

type SurveyQuestionRequest struct {
	TextAr     string          `json:"textAr" validate:"notblank"`
	TextEn     string          `json:"textEn" validate:"notblank"`
	Type       string          `json:"type" validate:"required,oneof=multiple_choice free_text"`
	OptionsAr  json.RawMessage `json:"optionsAr"`
	OptionsEn  json.RawMessage `json:"optionsEn"`
	Order      int             `json:"order"`
	IsRequired bool            `json:"isRequired"`
	IsActive   bool            `json:"isActive"`
}

func (r SurveyQuestionRequest) Validate() error {
	return validate.Struct(r)
}

type QuestionAnalytics struct {
	QuestionID   string         `json:"questionId"`
	TextAr       string         `json:"textAr"`
	TextEn       string         `json:"textEn"`
	Type         string         `json:"type"`
	TotalAnswers int            `json:"totalAnswers"`
	AnswerCounts map[string]int `json:"answerCounts"`
}

type SurveyAnalyticsSummary struct {
	TotalQuestions int   `json:"totalQuestions"`
	TotalResponses int64 `json:"totalResponses"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}

type RecentResponse struct {
	VisitorID  string `json:"visitorId"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Locale     string `json:"locale"`
	CreatedAt  string `json:"createdAt"`
}

type SurveyAnalyticsResponse struct {
	Summary         SurveyAnalyticsSummary `json:"summary"`
	Questions       []QuestionAnalytics    `json:"questions"`
	RecentResponses []RecentResponse       `json:"recentResponses"`
}
