package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hmosawi/folio_api/model"
	"gorm.io/gorm"
)

// SocialSeeder handles seeding the default social links
type SocialSeeder struct {
	db *gorm.DB
}

// NewSocialSeeder creates a new social link seeder
func NewSocialSeeder(db *gorm.DB) *SocialSeeder {
	return &SocialSeeder{db: db}
}

// SeedLinks creates placeholder social links when none exist
func (s *SocialSeeder) SeedLinks() error {
	var count int64
	if err := s.db.Model(&model.SocialLink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Social links already exist, skipping social seeding")
		return nil
	}

	icon := func(name string) *string { return &name }

	links := []model.SocialLink{
		{
			Platform: "github",
			URL:      "https://github.com",
			LabelAr:  "جيت هاب",
			LabelEn:  "GitHub",
			Icon:     icon("github"),
			Order:    1,
			IsActive: true,
		},
		{
			Platform: "linkedin",
			URL:      "https://linkedin.com",
			LabelAr:  "لينكد إن",
			LabelEn:  "LinkedIn",
			Icon:     icon("linkedin"),
			Order:    2,
			IsActive: true,
		},
		{
			Platform: "x",
			URL:      "https://x.com",
			LabelAr:  "إكس",
			LabelEn:  "X",
			Icon:     icon("x"),
			Order:    3,
			IsActive: true,
		},
	}

	now := time.Now()
	for i := range links {
		id, _ := uuid.NewV7()
		links[i].ID = id.String()
		links[i].CreatedAt = now
		links[i].UpdatedAt = now
	}

	if err := s.db.Create(&links).Error; err != nil {
		log.Printf("Error creating social links: %v", err)
		return err
	}

	log.Printf("Created %d social links", len(links))
	return nil
}
