package model

import "time"

// TimelineEntry is one station on the personal journey page.
type TimelineEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null"`
	TitleAr   string    `json:"title_ar" gorm:"not null"`
	TitleEn   string    `json:"title_en" gorm:"not null"`
	StoryAr   string    `json:"story_ar" gorm:"type:text"`
	StoryEn   string    `json:"story_en" gorm:"type:text"`
	ImageURL  *string   `json:"image_url"`
	Order     int       `json:"order" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
