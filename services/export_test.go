package services

import (
	"errors"
	"testing"

	"github.com/hmosawi/folio_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExportStore struct {
	projectsErr error
}

func (f *fakeExportStore) GetProjects(publishedOnly bool) ([]model.Project, error) {
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	return []model.Project{{ID: "p1", Slug: "p1", Images: []model.ProjectImage{{URL: "https://cdn.example.com/p1.webp"}}}}, nil
}

func (f *fakeExportStore) GetTimeline() ([]model.TimelineEntry, error) {
	return []model.TimelineEntry{{ID: "t1"}}, nil
}

func (f *fakeExportStore) GetSocialLinks(activeOnly bool) ([]model.SocialLink, error) {
	return []model.SocialLink{{ID: "s1"}}, nil
}

func (f *fakeExportStore) GetMessages(unreadOnly bool) ([]model.Message, error) {
	return []model.Message{{ID: "m1"}}, nil
}

func (f *fakeExportStore) GetSurveyQuestions(activeOnly bool) ([]model.SurveyQuestion, error) {
	return []model.SurveyQuestion{{ID: "q1"}}, nil
}

func (f *fakeExportStore) GetSurveyResponses() ([]model.SurveyResponse, error) {
	return []model.SurveyResponse{{ID: "r1"}, {ID: "r2"}}, nil
}

func TestSnapshot_BundlesEveryTable(t *testing.T) {
	svc := &ExportService{store: &fakeExportStore{}}

	snapshot, err := svc.Snapshot()
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot["exportedAt"])

	data, ok := snapshot["data"].(map[string]interface{})
	require.True(t, ok)

	for _, key := range []string{"projects", "timeline", "socialLinks", "messages", "surveyQuestions", "surveyResponses"} {
		assert.Contains(t, data, key)
	}

	responses, ok := data["surveyResponses"].([]model.SurveyResponse)
	require.True(t, ok)
	assert.Len(t, responses, 2)
}

func TestSnapshot_StoreErrorPropagates(t *testing.T) {
	svc := &ExportService{store: &fakeExportStore{projectsErr: errors.New("connection refused")}}

	snapshot, err := svc.Snapshot()
	require.Error(t, err)
	assert.Nil(t, snapshot)
}
