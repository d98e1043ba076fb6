package services

import (
	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
)

type TimelineService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const TIMELINE_SVC = "timeline_svc"

func (svc TimelineService) Id() string {
	return TIMELINE_SVC
}

func (svc *TimelineService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *TimelineService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

func (svc *TimelineService) List() ([]model.TimelineEntry, error) {
	return svc.sqlSvc.GetTimeline()
}

func (svc *TimelineService) Create(req dto.TimelineEntryRequest) (*model.TimelineEntry, error) {
	entry := &model.TimelineEntry{
		Date:     req.Date,
		Age:      req.Age,
		TitleAr:  req.TitleAr,
		TitleEn:  req.TitleEn,
		StoryAr:  req.StoryAr,
		StoryEn:  req.StoryEn,
		ImageURL: req.ImageURL,
		Order:    req.Order,
	}

	return svc.sqlSvc.CreateTimelineEntry(entry)
}

func (svc *TimelineService) Update(id string, req dto.TimelineEntryRequest) (*model.TimelineEntry, error) {
	entry, err := svc.sqlSvc.GetTimelineEntry(id)
	if err != nil {
		return nil, err
	}

	entry.Date = req.Date
	entry.Age = req.Age
	entry.TitleAr = req.TitleAr
	entry.TitleEn = req.TitleEn
	entry.StoryAr = req.StoryAr
	entry.StoryEn = req.StoryEn
	entry.ImageURL = req.ImageURL
	entry.Order = req.Order

	if err := svc.sqlSvc.UpdateTimelineEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (svc *TimelineService) Delete(id string) error {
	return svc.sqlSvc.DeleteTimelineEntry(id)
}
