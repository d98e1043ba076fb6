package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	"gorm.io/gorm"
)

// SurveySeeder handles seeding the initial visitor survey
type SurveySeeder struct {
	db *gorm.DB
}

// NewSurveySeeder creates a new survey seeder
func NewSurveySeeder(db *gorm.DB) *SurveySeeder {
	return &SurveySeeder{db: db}
}

// SeedQuestions creates the default survey questions when none exist
func (s *SurveySeeder) SeedQuestions() error {
	var count int64
	if err := s.db.Model(&model.SurveyQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Survey questions already exist, skipping survey seeding")
		return nil
	}

	questions := []model.SurveyQuestion{
		{
			TextAr:     "كيف وصلت إلى هذا الموقع؟",
			TextEn:     "How did you find this site?",
			Type:       shared.QuestionTypeMultipleChoice,
			OptionsAr:  mustJSON([]string{"بحث جوجل", "وسائل التواصل", "توصية صديق", "أخرى"}),
			OptionsEn:  mustJSON([]string{"Google search", "Social media", "Friend recommendation", "Other"}),
			Order:      1,
			IsRequired: true,
			IsActive:   true,
		},
		{
			TextAr:     "ما نوع الخدمة التي تهمك؟",
			TextEn:     "Which service interests you?",
			Type:       shared.QuestionTypeMultipleChoice,
			OptionsAr:  mustJSON([]string{"تطوير منتج أولي", "برمجيات كخدمة", "تكامل الذكاء الاصطناعي"}),
			OptionsEn:  mustJSON([]string{shared.ServiceTypeMVP, shared.ServiceTypeSaaS, shared.ServiceTypeAI}),
			Order:      2,
			IsRequired: true,
			IsActive:   true,
		},
		{
			TextAr:     "ما الذي تود رؤيته في الموقع؟",
			TextEn:     "What would you like to see on the site?",
			Type:       shared.QuestionTypeFreeText,
			Order:      3,
			IsRequired: false,
			IsActive:   true,
		},
	}

	now := time.Now()
	for i := range questions {
		id, _ := uuid.NewV7()
		questions[i].ID = id.String()
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
	}

	if err := s.db.Create(&questions).Error; err != nil {
		log.Printf("Error creating survey questions: %v", err)
		return err
	}

	log.Printf("Created %d survey questions", len(questions))
	return nil
}

func mustJSON(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
