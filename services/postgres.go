package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "folio_api"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	models := []interface{}{
		&model.User{},
		&model.Project{},
		&model.ProjectImage{},
		&model.TimelineEntry{},
		&model.SocialLink{},
		&model.Message{},
		&model.SurveyQuestion{},
		&model.SurveyResponse{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var message string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		message = "Resource already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		message = "Invalid reference"
	default:
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			statusCode = http.StatusConflict
			message = "Resource already exists"
		} else if strings.Contains(err.Error(), "connection refused") {
			statusCode = http.StatusServiceUnavailable
			message = "Database unavailable"
		} else {
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return &shared.AppError{StatusCode: statusCode, Message: message, Err: err}
}

// ==================== USER METHODS ====================

func (ds *PostgresService) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := ds.db.Create(user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return user, nil
}

func (ds *PostgresService) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByID(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *PostgresService) CountUsers() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

func (ds *PostgresService) UpdateLastLogin(userID string) error {
	now := time.Now()
	return ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_login": &now,
		"updated_at": now,
	}).Error
}

// ==================== PROJECT METHODS ====================

func (ds *PostgresService) CreateProject(project *model.Project) (*model.Project, error) {
	if project.ID == "" {
		id, _ := uuid.NewV7()
		project.ID = id.String()
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	for i := range project.Images {
		if project.Images[i].ID == "" {
			id, _ := uuid.NewV7()
			project.Images[i].ID = id.String()
		}
		project.Images[i].ProjectID = project.ID
	}

	if err := ds.db.Create(project).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return project, nil
}

func (ds *PostgresService) GetProject(id string) (*model.Project, error) {
	var project model.Project
	if err := ds.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" ASC")
	}).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &project, nil
}

func (ds *PostgresService) GetProjectBySlug(slug string) (*model.Project, error) {
	var project model.Project
	if err := ds.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" ASC")
	}).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &project, nil
}

func (ds *PostgresService) GetProjects(publishedOnly bool) ([]model.Project, error) {
	var projects []model.Project
	query := ds.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" ASC")
	})

	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Order("\"order\" ASC, created_at DESC").Find(&projects).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return projects, nil
}

func (ds *PostgresService) SlugExists(slug string) (bool, error) {
	var count int64
	if err := ds.db.Model(&model.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, ds.HandleError(err)
	}
	return count > 0, nil
}

func (ds *PostgresService) UpdateProject(project *model.Project) error {
	project.UpdatedAt = time.Now()

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectImage{}).Error; err != nil {
			return err
		}
		for i := range project.Images {
			if project.Images[i].ID == "" {
				id, _ := uuid.NewV7()
				project.Images[i].ID = id.String()
			}
			project.Images[i].ProjectID = project.ID
		}
		return tx.Save(project).Error
	})
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteProject(id string) error {
	err := ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectImage{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== TIMELINE METHODS ====================

func (ds *PostgresService) CreateTimelineEntry(entry *model.TimelineEntry) (*model.TimelineEntry, error) {
	if entry.ID == "" {
		id, _ := uuid.NewV7()
		entry.ID = id.String()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()

	if err := ds.db.Create(entry).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return entry, nil
}

func (ds *PostgresService) GetTimelineEntry(id string) (*model.TimelineEntry, error) {
	var entry model.TimelineEntry
	if err := ds.db.Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &entry, nil
}

func (ds *PostgresService) GetTimeline() ([]model.TimelineEntry, error) {
	var entries []model.TimelineEntry
	if err := ds.db.Order("\"order\" ASC, date ASC").Find(&entries).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return entries, nil
}

func (ds *PostgresService) UpdateTimelineEntry(entry *model.TimelineEntry) error {
	entry.UpdatedAt = time.Now()
	if err := ds.db.Save(entry).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteTimelineEntry(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.TimelineEntry{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ds.HandleError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ==================== SOCIAL LINK METHODS ====================

func (ds *PostgresService) CreateSocialLink(link *model.SocialLink) (*model.SocialLink, error) {
	if link.ID == "" {
		id, _ := uuid.NewV7()
		link.ID = id.String()
	}
	link.CreatedAt = time.Now()
	link.UpdatedAt = time.Now()

	if err := ds.db.Create(link).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return link, nil
}

func (ds *PostgresService) GetSocialLink(id string) (*model.SocialLink, error) {
	var link model.SocialLink
	if err := ds.db.Where("id = ?", id).First(&link).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &link, nil
}

func (ds *PostgresService) GetSocialLinks(activeOnly bool) ([]model.SocialLink, error) {
	var links []model.SocialLink
	query := ds.db.Model(&model.SocialLink{})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("\"order\" ASC").Find(&links).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return links, nil
}

func (ds *PostgresService) UpdateSocialLink(link *model.SocialLink) error {
	link.UpdatedAt = time.Now()
	if err := ds.db.Save(link).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteSocialLink(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.SocialLink{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ds.HandleError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ==================== MESSAGE METHODS ====================

func (ds *PostgresService) CreateMessage(message *model.Message) (*model.Message, error) {
	if message.ID == "" {
		id, _ := uuid.NewV7()
		message.ID = id.String()
	}
	message.CreatedAt = time.Now()

	if err := ds.db.Create(message).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return message, nil
}

func (ds *PostgresService) GetMessage(id string) (*model.Message, error) {
	var message model.Message
	if err := ds.db.Where("id = ?", id).First(&message).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &message, nil
}

func (ds *PostgresService) GetMessages(unreadOnly bool) ([]model.Message, error) {
	var messages []model.Message
	query := ds.db.Model(&model.Message{})

	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return messages, nil
}

func (ds *PostgresService) SetMessageEmailStatus(id, status string) error {
	return ds.db.Model(&model.Message{}).Where("id = ?", id).
		Update("email_status", status).Error
}

func (ds *PostgresService) MarkMessageRead(id string) error {
	result := ds.db.Model(&model.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ds.HandleError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (ds *PostgresService) DeleteMessage(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Message{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ds.HandleError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ==================== SURVEY METHODS ====================

func (ds *PostgresService) CreateSurveyQuestion(question *model.SurveyQuestion) (*model.SurveyQuestion, error) {
	if question.ID == "" {
		id, _ := uuid.NewV7()
		question.ID = id.String()
	}
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()

	if err := ds.db.Create(question).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return question, nil
}

func (ds *PostgresService) GetSurveyQuestion(id string) (*model.SurveyQuestion, error) {
	var question model.SurveyQuestion
	if err := ds.db.Where("id = ?", id).First(&question).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &question, nil
}

func (ds *PostgresService) GetSurveyQuestions(activeOnly bool) ([]model.SurveyQuestion, error) {
	var questions []model.SurveyQuestion
	query := ds.db.Model(&model.SurveyQuestion{})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("\"order\" ASC").Find(&questions).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return questions, nil
}

func (ds *PostgresService) UpdateSurveyQuestion(question *model.SurveyQuestion) error {
	question.UpdatedAt = time.Now()
	if err := ds.db.Save(question).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteSurveyQuestion(id string) error {
	err := ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.SurveyResponse{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.SurveyQuestion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) CreateSurveyResponses(responses []model.SurveyResponse) error {
	if len(responses) == 0 {
		return nil
	}

	now := time.Now()
	for i := range responses {
		if responses[i].ID == "" {
			id, _ := uuid.NewV7()
			responses[i].ID = id.String()
		}
		responses[i].CreatedAt = now
	}

	if err := ds.db.CreateInBatches(responses, 100).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetSurveyResponses() ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	if err := ds.db.Order("created_at DESC").Find(&responses).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return responses, nil
}

func (ds *PostgresService) GetRecentSurveyResponses(limit int) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	if err := ds.db.Order("created_at DESC").Limit(limit).Find(&responses).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return responses, nil
}

func (ds *PostgresService) CountSurveyResponses() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.SurveyResponse{}).Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

func (ds *PostgresService) CountUniqueSurveyVisitors() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.SurveyResponse{}).
		Distinct("visitor_id").Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

func (ds *PostgresService) GetResponsesByQuestion(questionID string) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	if err := ds.db.Where("question_id = ?", questionID).Find(&responses).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return responses, nil
}
