package services

import (
	"errors"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *PostgresService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

// Register creates an admin account. Open only while no account exists,
// unless ALLOW_REGISTRATION overrides it.
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	count, err := svc.sqlSvc.CountUsers()
	if err != nil {
		return nil, err
	}

	if count > 0 && os.Getenv("ALLOW_REGISTRATION") != "true" {
		return nil, shared.NewForbiddenError(nil, "Registration is closed")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	user := &model.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
	}

	if _, err := svc.sqlSvc.CreateUser(user); err != nil {
		return nil, err
	}

	return svc.issueToken(user.ID)
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := svc.sqlSvc.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	if err := svc.sqlSvc.UpdateLastLogin(user.ID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return svc.issueToken(user.ID)
}

func (svc *AuthService) issueToken(userID string) (*dto.TokenResponse, error) {
	token, expTime, err := svc.jwtSvc.ToJWT(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: expTime.Unix(),
	}, nil
}

// RequiredAuth guards admin routes. The user id lands in c.Locals for
// downstream handlers.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.ResponseUnauthorized(c)
		}

		if _, err := svc.sqlSvc.GetUserByID(userID); err != nil {
			return shared.ResponseUnauthorized(c)
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
