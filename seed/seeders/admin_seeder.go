package seeders

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hmosawi/folio_api/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminSeeder handles seeding the admin account
type AdminSeeder struct {
	db *gorm.DB
}

// NewAdminSeeder creates a new admin seeder
func NewAdminSeeder(db *gorm.DB) *AdminSeeder {
	return &AdminSeeder{db: db}
}

// SeedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD
func (s *AdminSeeder) SeedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing model.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin account already exists, skipping admin seeding")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id, _ := uuid.NewV7()

	admin := model.User{
		ID:        id.String(),
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin account: %v", err)
		return err
	}

	log.Printf("Created admin account: %s", admin.Email)
	return nil
}
