package model

import "time"

// Message is a contact form submission. Rows are created by the public
// endpoint and only EmailStatus and IsRead change afterwards.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SenderName  string    `json:"sender_name" gorm:"not null;size:255"`
	SenderEmail string    `json:"sender_email" gorm:"not null;size:255"`
	ServiceType string    `json:"service_type" gorm:"not null;size:100"`
	Budget      string    `json:"budget" gorm:"size:100"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	IsRead      bool      `json:"is_read" gorm:"default:false;not null"`
	EmailStatus string    `json:"email_status" gorm:"default:pending;not null;size:20"`
	Locale      string    `json:"locale" gorm:"default:ar;not null;size:5"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index"`
}
