package model

import "time"

type SocialLink struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Platform  string    `json:"platform" gorm:"not null;size:100"`
	URL       string    `json:"url" gorm:"not null"`
	LabelAr   string    `json:"label_ar"`
	LabelEn   string    `json:"label_en"`
	Icon      *string   `json:"icon"`
	Order     int       `json:"order" gorm:"default:0;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
