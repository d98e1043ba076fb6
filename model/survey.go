package model

import (
	"encoding/json"
	"time"
)

type SurveyQuestion struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	TextAr     string          `json:"text_ar" gorm:"not null"`
	TextEn     string          `json:"text_en" gorm:"not null"`
	Type       string          `json:"type" gorm:"not null;size:30"` // multiple_choice, free_text
	OptionsAr  json.RawMessage `json:"options_ar" gorm:"type:text"`
	OptionsEn  json.RawMessage `json:"options_en" gorm:"type:text"`
	Order      int             `json:"order" gorm:"default:0;not null"`
	IsRequired bool            `json:"is_required" gorm:"default:false;not null"`
	IsActive   bool            `json:"is_active" gorm:"default:true;not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type SurveyResponse struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	VisitorID  string    `json:"visitor_id" gorm:"not null;index"`
	QuestionID string    `json:"question_id" gorm:"not null;index"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	Locale     string    `json:"locale" gorm:"default:ar;not null;size:5"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;index"`
}
