package model

import (
	"encoding/json"
	"time"
)

// Project is a portfolio entry with bilingual content.
type Project struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	Slug        string          `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	TitleAr     string          `json:"title_ar" gorm:"not null"`
	TitleEn     string          `json:"title_en" gorm:"not null"`
	SummaryAr   string          `json:"summary_ar" gorm:"type:text"`
	SummaryEn   string          `json:"summary_en" gorm:"type:text"`
	BodyAr      string          `json:"body_ar" gorm:"type:text"`
	BodyEn      string          `json:"body_en" gorm:"type:text"`
	PreviewURL  *string         `json:"preview_url"`
	Skills      json.RawMessage `json:"skills" gorm:"type:text"` // JSON array of skill tags
	BuildTime   *string         `json:"build_time"`
	Order       int             `json:"order" gorm:"default:0;not null"`
	IsPublished bool            `json:"is_published" gorm:"default:false;not null;index"`
	IsFeatured  bool            `json:"is_featured" gorm:"default:false;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Images []ProjectImage `json:"images" gorm:"foreignKey:ProjectID"`
}

type ProjectImage struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	ProjectID string  `json:"project_id" gorm:"not null;index"`
	URL       string  `json:"url" gorm:"not null"`
	AltAr     *string `json:"alt_ar"`
	AltEn     *string `json:"alt_en"`
	Order     int     `json:"order" gorm:"default:0;not null"`
}
