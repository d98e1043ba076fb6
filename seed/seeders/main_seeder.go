package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	adminSeeder := NewAdminSeeder(s.db)
	if err := adminSeeder.SeedAdmin(); err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return err
	}

	surveySeeder := NewSurveySeeder(s.db)
	if err := surveySeeder.SeedQuestions(); err != nil {
		log.Printf("Survey seeding failed: %v", err)
		return err
	}

	socialSeeder := NewSocialSeeder(s.db)
	if err := socialSeeder.SeedLinks(); err != nil {
		log.Printf("Social link seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdminOnly seeds only the admin account
func (s *MainSeeder) SeedAdminOnly() error {
	return NewAdminSeeder(s.db).SeedAdmin()
}

// SeedSurveyOnly seeds only survey questions
func (s *MainSeeder) SeedSurveyOnly() error {
	return NewSurveySeeder(s.db).SeedQuestions()
}

// SeedSocialOnly seeds only social links
func (s *MainSeeder) SeedSocialOnly() error {
	return NewSocialSeeder(s.db).SeedLinks()
}
