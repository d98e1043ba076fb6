package services

import (
	gocontext "context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	log "github.com/sirupsen/logrus"
)

type ProjectService struct {
	context.DefaultService

	store projectStore
	cache projectCache
}

// projectStore is the slice of the database layer the project flow needs.
type projectStore interface {
	CreateProject(project *model.Project) (*model.Project, error)
	GetProject(id string) (*model.Project, error)
	GetProjectBySlug(slug string) (*model.Project, error)
	GetProjects(publishedOnly bool) ([]model.Project, error)
	SlugExists(slug string) (bool, error)
	UpdateProject(project *model.Project) error
	DeleteProject(id string) error
}

// projectCache holds the published listing between admin edits. Cache
// failures only cost a database round trip.
type projectCache interface {
	Enabled() bool
	Set(ctx gocontext.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx gocontext.Context, key string, dest interface{}) error
	Delete(ctx gocontext.Context, keys ...string) error
}

const PROJECT_SVC = "project_svc"

const (
	publishedProjectsKey = "cache:projects:published"
	publishedProjectsTTL = 5 * time.Minute
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

func (svc ProjectService) Id() string {
	return PROJECT_SVC
}

func (svc *ProjectService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProjectService) Start() error {
	svc.store = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.cache = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *ProjectService) ListPublished() ([]model.Project, error) {
	if svc.cacheEnabled() {
		var cached []model.Project
		if err := svc.cache.GetJSON(gocontext.Background(), publishedProjectsKey, &cached); err != nil {
			log.WithError(err).Warn("Published project cache read failed")
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	projects, err := svc.store.GetProjects(true)
	if err != nil {
		return nil, err
	}

	if svc.cacheEnabled() && len(projects) > 0 {
		if err := svc.cache.Set(gocontext.Background(), publishedProjectsKey, projects, publishedProjectsTTL); err != nil {
			log.WithError(err).Warn("Published project cache write failed")
		}
	}

	return projects, nil
}

func (svc *ProjectService) ListAll() ([]model.Project, error) {
	return svc.store.GetProjects(false)
}

func (svc *ProjectService) GetBySlug(slug string) (*model.Project, error) {
	return svc.store.GetProjectBySlug(slug)
}

func (svc *ProjectService) Get(id string) (*model.Project, error) {
	return svc.store.GetProject(id)
}

func (svc *ProjectService) Create(req dto.ProjectRequest) (*model.Project, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.TitleEn)
	}

	exists, err := svc.store.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}

	project := &model.Project{
		Slug:        slug,
		TitleAr:     req.TitleAr,
		TitleEn:     req.TitleEn,
		SummaryAr:   req.SummaryAr,
		SummaryEn:   req.SummaryEn,
		BodyAr:      req.BodyAr,
		BodyEn:      req.BodyEn,
		PreviewURL:  req.PreviewURL,
		Skills:      req.Skills,
		BuildTime:   req.BuildTime,
		Order:       req.Order,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		Images:      imagesFromInput(req.Images),
	}

	created, err := svc.store.CreateProject(project)
	if err != nil {
		return nil, err
	}

	svc.invalidateListing()
	return created, nil
}

func (svc *ProjectService) Update(id string, req dto.ProjectRequest) (*model.Project, error) {
	project, err := svc.store.GetProject(id)
	if err != nil {
		return nil, err
	}

	if req.Slug != "" && req.Slug != project.Slug {
		exists, err := svc.store.SlugExists(req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			req.Slug = fmt.Sprintf("%s-%d", req.Slug, time.Now().UnixMilli())
		}
		project.Slug = req.Slug
	}

	project.TitleAr = req.TitleAr
	project.TitleEn = req.TitleEn
	project.SummaryAr = req.SummaryAr
	project.SummaryEn = req.SummaryEn
	project.BodyAr = req.BodyAr
	project.BodyEn = req.BodyEn
	project.PreviewURL = req.PreviewURL
	project.Skills = req.Skills
	project.BuildTime = req.BuildTime
	project.Order = req.Order
	project.IsPublished = req.IsPublished
	project.IsFeatured = req.IsFeatured
	project.Images = imagesFromInput(req.Images)

	if err := svc.store.UpdateProject(project); err != nil {
		return nil, err
	}

	svc.invalidateListing()
	return project, nil
}

func (svc *ProjectService) Delete(id string) error {
	if err := svc.store.DeleteProject(id); err != nil {
		return err
	}

	svc.invalidateListing()
	return nil
}

func (svc *ProjectService) cacheEnabled() bool {
	return svc.cache != nil && svc.cache.Enabled()
}

func (svc *ProjectService) invalidateListing() {
	if !svc.cacheEnabled() {
		return
	}

	if err := svc.cache.Delete(gocontext.Background(), publishedProjectsKey); err != nil {
		log.WithError(err).Warn("Published project cache invalidation failed")
	}
}

func imagesFromInput(inputs []dto.ProjectImageInput) []model.ProjectImage {
	images := make([]model.ProjectImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, model.ProjectImage{
			URL:   in.URL,
			AltAr: in.AltAr,
			AltEn: in.AltEn,
			Order: in.Order,
		})
	}
	return images
}

// Slugify derives a URL slug from the English title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
