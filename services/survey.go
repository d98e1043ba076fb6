package services

import (
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
)

type SurveyService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const SURVEY_SVC = "survey_svc"

func (svc SurveyService) Id() string {
	return SURVEY_SVC
}

func (svc *SurveyService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SurveyService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

func (svc *SurveyService) ActiveQuestions() ([]model.SurveyQuestion, error) {
	return svc.sqlSvc.GetSurveyQuestions(true)
}

func (svc *SurveyService) AllQuestions() ([]model.SurveyQuestion, error) {
	return svc.sqlSvc.GetSurveyQuestions(false)
}

func (svc *SurveyService) CreateQuestion(req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error) {
	question := &model.SurveyQuestion{
		TextAr:     req.TextAr,
		TextEn:     req.TextEn,
		Type:       req.Type,
		OptionsAr:  req.OptionsAr,
		OptionsEn:  req.OptionsEn,
		Order:      req.Order,
		IsRequired: req.IsRequired,
		IsActive:   req.IsActive,
	}

	return svc.sqlSvc.CreateSurveyQuestion(question)
}

func (svc *SurveyService) UpdateQuestion(id string, req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error) {
	question, err := svc.sqlSvc.GetSurveyQuestion(id)
	if err != nil {
		return nil, err
	}

	question.TextAr = req.TextAr
	question.TextEn = req.TextEn
	question.Type = req.Type
	question.OptionsAr = req.OptionsAr
	question.OptionsEn = req.OptionsEn
	question.Order = req.Order
	question.IsRequired = req.IsRequired
	question.IsActive = req.IsActive

	if err := svc.sqlSvc.UpdateSurveyQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (svc *SurveyService) DeleteQuestion(id string) error {
	return svc.sqlSvc.DeleteSurveyQuestion(id)
}

// SubmitResponses stores one visitor's batch of answers and reports how many
// were saved.
func (svc *SurveyService) SubmitResponses(req dto.SubmitSurveyRequest) (int, error) {
	locale := req.Locale
	if locale == "" {
		locale = shared.LocaleArabic
	}

	visitorID := strings.TrimSpace(req.VisitorID)

	responses := make([]model.SurveyResponse, 0, len(req.Responses))
	for _, answer := range req.Responses {
		responses = append(responses, model.SurveyResponse{
			VisitorID:  visitorID,
			QuestionID: strings.TrimSpace(answer.QuestionID),
			Answer:     strings.TrimSpace(answer.Answer),
			Locale:     locale,
		})
	}

	if err := svc.sqlSvc.CreateSurveyResponses(responses); err != nil {
		return 0, err
	}

	return len(responses), nil
}

// Analytics tallies answers per question and summarizes activity for the
// admin dashboard.
func (svc *SurveyService) Analytics() (*dto.SurveyAnalyticsResponse, error) {
	questions, err := svc.sqlSvc.GetSurveyQuestions(false)
	if err != nil {
		return nil, err
	}

	totalResponses, err := svc.sqlSvc.CountSurveyResponses()
	if err != nil {
		return nil, err
	}

	uniqueVisitors, err := svc.sqlSvc.CountUniqueSurveyVisitors()
	if err != nil {
		return nil, err
	}

	questionStats := make([]dto.QuestionAnalytics, 0, len(questions))
	for _, question := range questions {
		responses, err := svc.sqlSvc.GetResponsesByQuestion(question.ID)
		if err != nil {
			return nil, err
		}

		counts := make(map[string]int)
		for _, response := range responses {
			counts[response.Answer]++
		}

		questionStats = append(questionStats, dto.QuestionAnalytics{
			QuestionID:   question.ID,
			TextAr:       question.TextAr,
			TextEn:       question.TextEn,
			Type:         question.Type,
			TotalAnswers: len(responses),
			AnswerCounts: counts,
		})
	}

	recent, err := svc.sqlSvc.GetRecentSurveyResponses(10)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]dto.RecentResponse, 0, len(recent))
	for _, response := range recent {
		recentResponses = append(recentResponses, dto.RecentResponse{
			VisitorID:  response.VisitorID,
			QuestionID: response.QuestionID,
			Answer:     response.Answer,
			Locale:     response.Locale,
			CreatedAt:  response.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return &dto.SurveyAnalyticsResponse{
		Summary: dto.SurveyAnalyticsSummary{
			TotalQuestions: len(questions),
			TotalResponses: totalResponses,
			UniqueVisitors: uniqueVisitors,
		},
		Questions:       questionStats,
		RecentResponses: recentResponses,
	}, nil
}
