package services

import (
	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
)

type SocialService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const SOCIAL_SVC = "social_svc"

func (svc SocialService) Id() string {
	return SOCIAL_SVC
}

func (svc *SocialService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SocialService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

func (svc *SocialService) ListActive() ([]model.SocialLink, error) {
	return svc.sqlSvc.GetSocialLinks(true)
}

func (svc *SocialService) ListAll() ([]model.SocialLink, error) {
	return svc.sqlSvc.GetSocialLinks(false)
}

func (svc *SocialService) Create(req dto.SocialLinkRequest) (*model.SocialLink, error) {
	link := &model.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		LabelAr:  req.LabelAr,
		LabelEn:  req.LabelEn,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: req.IsActive,
	}

	return svc.sqlSvc.CreateSocialLink(link)
}

func (svc *SocialService) Update(id string, req dto.SocialLinkRequest) (*model.SocialLink, error) {
	link, err := svc.sqlSvc.GetSocialLink(id)
	if err != nil {
		return nil, err
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.LabelAr = req.LabelAr
	link.LabelEn = req.LabelEn
	link.Icon = req.Icon
	link.Order = req.Order
	link.IsActive = req.IsActive

	if err := svc.sqlSvc.UpdateSocialLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (svc *SocialService) Delete(id string) error {
	return svc.sqlSvc.DeleteSocialLink(id)
}
