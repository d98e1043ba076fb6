package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/hmosawi/folio_api/docs"
	"github.com/hmosawi/folio_api/services/handlers"
	"github.com/hmosawi/folio_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	projectSvc    *ProjectService
	timelineSvc   *TimelineService
	socialSvc     *SocialService
	messageSvc    *MessageService
	surveySvc     *SurveyService
	exportSvc     *ExportService
	mediaSvc      *MediaService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.projectSvc = svc.Service(PROJECT_SVC).(*ProjectService)
	svc.timelineSvc = svc.Service(TIMELINE_SVC).(*TimelineService)
	svc.socialSvc = svc.Service(SOCIAL_SVC).(*SocialService)
	svc.messageSvc = svc.Service(MESSAGE_SVC).(*MessageService)
	svc.surveySvc = svc.Service(SURVEY_SVC).(*SurveyService)
	svc.exportSvc = svc.Service(EXPORT_SVC).(*ExportService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	svc.registerRoutes(app)

	svc.server = app

	log.Printf("HTTP server listening on :%v", svc.port)
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	projectHandler := handlers.NewProjectHandler(svc.projectSvc)
	timelineHandler := handlers.NewTimelineHandler(svc.timelineSvc)
	socialHandler := handlers.NewSocialHandler(svc.socialSvc)
	messageHandler := handlers.NewMessageHandler(svc.messageSvc)
	surveyHandler := handlers.NewSurveyHandler(svc.surveySvc)
	exportHandler := handlers.NewExportHandler(svc.exportSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)
	adminHandler := handlers.NewAdminHandler(svc.rateLimitSvc)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	// Public content
	v1.Get("/projects", projectHandler.ListPublished)
	v1.Get("/projects/:slug", projectHandler.GetBySlug)
	v1.Get("/timeline", timelineHandler.List)
	v1.Get("/social-links", socialHandler.ListActive)
	v1.Get("/survey/questions", surveyHandler.Questions)

	// Public submissions, behind the gate
	v1.Post("/messages", svc.rateLimitSvc.RateLimit(CategoryMessages), messageHandler.Submit)
	v1.Post("/survey/responses", svc.rateLimitSvc.RateLimit(CategorySurvey), surveyHandler.SubmitResponses)

	// Auth
	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	// Admin
	admin := v1.Group("/admin", svc.authSvc.RequiredAuth())

	admin.Get("/projects", projectHandler.ListAll)
	admin.Post("/projects", projectHandler.Create)
	admin.Get("/projects/:id", projectHandler.Get)
	admin.Put("/projects/:id", projectHandler.Update)
	admin.Delete("/projects/:id", projectHandler.Delete)

	admin.Get("/timeline", timelineHandler.List)
	admin.Post("/timeline", timelineHandler.Create)
	admin.Put("/timeline/:id", timelineHandler.Update)
	admin.Delete("/timeline/:id", timelineHandler.Delete)

	admin.Get("/social-links", socialHandler.ListAll)
	admin.Post("/social-links", socialHandler.Create)
	admin.Put("/social-links/:id", socialHandler.Update)
	admin.Delete("/social-links/:id", socialHandler.Delete)

	admin.Get("/messages", messageHandler.List)
	admin.Get("/messages/:id", messageHandler.Get)
	admin.Post("/messages/:id/read", messageHandler.MarkRead)
	admin.Delete("/messages/:id", messageHandler.Delete)

	admin.Get("/survey/questions", surveyHandler.AllQuestions)
	admin.Post("/survey/questions", surveyHandler.CreateQuestion)
	admin.Put("/survey/questions/:id", surveyHandler.UpdateQuestion)
	admin.Delete("/survey/questions/:id", surveyHandler.DeleteQuestion)
	admin.Get("/survey/analytics", surveyHandler.Analytics)

	admin.Get("/export", exportHandler.Download)
	// Kept for clients that fetched the survey-only export here.
	admin.Get("/survey/export", exportHandler.Download)

	admin.Post("/upload", mediaHandler.Upload)
	admin.Delete("/upload", mediaHandler.Delete)

	admin.Get("/rate-limits", adminHandler.RateLimitStats)
	admin.Delete("/rate-limits/:category/:identifier", adminHandler.ResetRateLimit)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseOK(c, "pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseError(c, appErr.StatusCode, appErr.Message)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseError(c, fiberErr.Code, fiberErr.Message)
	}

	log.WithError(err).Error("Unhandled request error")
	return shared.ResponseInternalError(c)
}
