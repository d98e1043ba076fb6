package dto

import "encoding/json"

type ProjectImageInput struct {
	URL   string  `json:"url" validate:"notblank,url"`
	AltAr *string `json:"altAr"`
	AltEn *string `json:"altEn"`
	Order int     `json:"order"`
}

type ProjectRequest struct {
	Slug        string              `json:"slug"`
	TitleAr     string              `json:"titleAr" validate:"notblank"`
	TitleEn     string              `json:"titleEn" validate:"notblank"`
	SummaryAr   string              `json:"summaryAr"`
	SummaryEn   string              `json:"summaryEn"`
	BodyAr      string              `json:"bodyAr"`
	BodyEn      string              `json:"bodyEn"`
	PreviewURL  *string             `json:"previewUrl"`
	Skills      json.RawMessage     `json:"skills"`
	BuildTime   *string             `json:"buildTime"`
	Order       int                 `json:"order"`
	IsPublished bool                `json:"isPublished"`
	IsFeatured  bool                `json:"isFeatured"`
	Images      []ProjectImageInput `json:"images" validate:"omitempty,dive"`
}

func (r ProjectRequest) Validate() error {
	return validate.Struct(r)
}
