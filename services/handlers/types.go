package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	RequiredAuth() fiber.Handler
}

type ProjectServiceInterface interface {
	ListPublished() ([]model.Project, error)
	ListAll() ([]model.Project, error)
	GetBySlug(slug string) (*model.Project, error)
	Get(id string) (*model.Project, error)
	Create(req dto.ProjectRequest) (*model.Project, error)
	Update(id string, req dto.ProjectRequest) (*model.Project, error)
	Delete(id string) error
}

type TimelineServiceInterface interface {
	List() ([]model.TimelineEntry, error)
	Create(req dto.TimelineEntryRequest) (*model.TimelineEntry, error)
	Update(id string, req dto.TimelineEntryRequest) (*model.TimelineEntry, error)
	Delete(id string) error
}

type SocialServiceInterface interface {
	ListActive() ([]model.SocialLink, error)
	ListAll() ([]model.SocialLink, error)
	Create(req dto.SocialLinkRequest) (*model.SocialLink, error)
	Update(id string, req dto.SocialLinkRequest) (*model.SocialLink, error)
	Delete(id string) error
}

type MessageServiceInterface interface {
	Submit(req dto.SubmitMessageRequest) (*model.Message, error)
	List(unreadOnly bool) ([]model.Message, error)
	Get(id string) (*model.Message, error)
	MarkRead(id string) error
	Delete(id string) error
}

type SurveyServiceInterface interface {
	ActiveQuestions() ([]model.SurveyQuestion, error)
	AllQuestions() ([]model.SurveyQuestion, error)
	CreateQuestion(req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error)
	UpdateQuestion(id string, req dto.SurveyQuestionRequest) (*model.SurveyQuestion, error)
	DeleteQuestion(id string) error
	SubmitResponses(req dto.SubmitSurveyRequest) (int, error)
	Analytics() (*dto.SurveyAnalyticsResponse, error)
}

type ExportServiceInterface interface {
	Snapshot() (map[string]interface{}, error)
}

type MediaServiceInterface interface {
	UploadImage(fileHeader *multipart.FileHeader, folder string) (*dto.MediaUploadResponse, error)
	DeleteImage(objectName string) error
}

type RateLimitServiceInterface interface {
	GetRateLimitStats(ctx context.Context) ([]dto.RateLimitStats, error)
	ResetRateLimit(ctx context.Context, category, identifier string) error
}
