package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/moodlog/internal/db"
	"github.com/terraincognita07/moodlog/internal/services"
	"gorm.io/gorm"
)

const (
	authTokenTTL        = 7 * 24 * time.Hour
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

type Handler struct {
	secretKey       []byte
	now             func() time.Time
	repositories    *db.Repositories
	authService     *services.AuthService
	accountService  *services.AccountService
	calendarService *services.CalendarService
	loginLimiter    *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("secret key is required")
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		now:          time.Now,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.accountService = services.NewAccountService(handler.repositories.Users)
	handler.calendarService = services.NewCalendarService(handler.repositories.Calendar)
	return handler
}
