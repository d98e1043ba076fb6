package services

import (
	"time"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/model"
)

type ExportService struct {
	context.DefaultService

	store exportStore
}

// exportStore is the slice of the database layer the backup needs.
type exportStore interface {
	GetProjects(publishedOnly bool) ([]model.Project, error)
	GetTimeline() ([]model.TimelineEntry, error)
	GetSocialLinks(activeOnly bool) ([]model.SocialLink, error)
	GetMessages(unreadOnly bool) ([]model.Message, error)
	GetSurveyQuestions(activeOnly bool) ([]model.SurveyQuestion, error)
	GetSurveyResponses() ([]model.SurveyResponse, error)
}

const EXPORT_SVC = "export_svc"

func (svc ExportService) Id() string {
	return EXPORT_SVC
}

func (svc *ExportService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ExportService) Start() error {
	svc.store = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// Snapshot bundles every table into one document for a backup or migration
// download, stamped with the export time.
func (svc *ExportService) Snapshot() (map[string]interface{}, error) {
	projects, err := svc.store.GetProjects(false)
	if err != nil {
		return nil, err
	}

	timeline, err := svc.store.GetTimeline()
	if err != nil {
		return nil, err
	}

	socialLinks, err := svc.store.GetSocialLinks(false)
	if err != nil {
		return nil, err
	}

	messages, err := svc.store.GetMessages(false)
	if err != nil {
		return nil, err
	}

	questions, err := svc.store.GetSurveyQuestions(false)
	if err != nil {
		return nil, err
	}

	responses, err := svc.store.GetSurveyResponses()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"exportedAt": time.Now().UTC().Format(time.RFC3339),
		"data": map[string]interface{}{
			"projects":        projects,
			"timeline":        timeline,
			"socialLinks":     socialLinks,
			"messages":        messages,
			"surveyQuestions": questions,
			"surveyResponses": responses,
		},
	}, nil
}
