package main

import (
	"github.com/hmosawi/folio_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.MinIOService{},

		&services.JWTService{},
		&services.AuthService{},
		&services.EmailService{},
		&services.RateLimitService{},
		&services.MediaService{},

		&services.ProjectService{},
		&services.TimelineService{},
		&services.SocialService{},
		&services.MessageService{},
		&services.SurveyService{},
		&services.ExportService{},

		&services.MonitoringService{},
		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
