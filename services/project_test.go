package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hmosawi/folio_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My First Project", "my-first-project"},
		{"  Spaced   Out  ", "spaced-out"},
		{"API & CLI Tools!", "api-cli-tools"},
		{"Already-Slugged", "already-slugged"},
		{"Numbers 123 work", "numbers-123-work"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

// --- Mocks ---

type fakeProjectStore struct {
	projects  []model.Project
	listCalls int
}

func (f *fakeProjectStore) CreateProject(project *model.Project) (*model.Project, error) {
	project.ID = "01936b2a-0000-7000-8000-0000000000aa"
	f.projects = append(f.projects, *project)
	return project, nil
}

func (f *fakeProjectStore) GetProject(id string) (*model.Project, error) {
	return &model.Project{ID: id, Slug: "existing"}, nil
}

func (f *fakeProjectStore) GetProjectBySlug(slug string) (*model.Project, error) { return nil, nil }

func (f *fakeProjectStore) GetProjects(publishedOnly bool) ([]model.Project, error) {
	f.listCalls++
	return f.projects, nil
}

func (f *fakeProjectStore) SlugExists(slug string) (bool, error)       { return false, nil }
func (f *fakeProjectStore) UpdateProject(project *model.Project) error { return nil }
func (f *fakeProjectStore) DeleteProject(id string) error              { return nil }

type fakeProjectCache struct {
	enabled     bool
	entries     map[string][]byte
	setCalls    int
	deleteCalls int
}

func newFakeProjectCache(enabled bool) *fakeProjectCache {
	return &fakeProjectCache{enabled: enabled, entries: make(map[string][]byte)}
}

func (f *fakeProjectCache) Enabled() bool {
	return f.enabled
}

func (f *fakeProjectCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.setCalls++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeProjectCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeProjectCache) Delete(ctx context.Context, keys ...string) error {
	f.deleteCalls++
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func TestListPublished_CacheMissPrimesCache(t *testing.T) {
	store := &fakeProjectStore{projects: []model.Project{{ID: "p1", Slug: "p1", IsPublished: true}}}
	cache := newFakeProjectCache(true)
	svc := &ProjectService{store: store, cache: cache}

	projects, err := svc.ListPublished()

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 1, store.listCalls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Contains(t, cache.entries, publishedProjectsKey)
}

func TestListPublished_CacheHitSkipsStore(t *testing.T) {
	store := &fakeProjectStore{}
	cache := newFakeProjectCache(true)
	require.NoError(t, cache.Set(context.Background(), publishedProjectsKey,
		[]model.Project{{ID: "p1", Slug: "p1"}}, time.Minute))
	cache.setCalls = 0

	svc := &ProjectService{store: store, cache: cache}

	projects, err := svc.ListPublished()

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, 0, store.listCalls)
}

func TestListPublished_CacheDisabledGoesToStore(t *testing.T) {
	store := &fakeProjectStore{projects: []model.Project{{ID: "p1"}}}
	cache := newFakeProjectCache(false)
	svc := &ProjectService{store: store, cache: cache}

	_, err := svc.ListPublished()

	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
	assert.Equal(t, 0, cache.setCalls)
}

func TestDelete_InvalidatesPublishedListing(t *testing.T) {
	store := &fakeProjectStore{}
	cache := newFakeProjectCache(true)
	require.NoError(t, cache.Set(context.Background(), publishedProjectsKey,
		[]model.Project{{ID: "p1"}}, time.Minute))

	svc := &ProjectService{store: store, cache: cache}

	require.NoError(t, svc.Delete("p1"))
	assert.Equal(t, 1, cache.deleteCalls)
	assert.NotContains(t, cache.entries, publishedProjectsKey)
}
