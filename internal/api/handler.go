package api

import (
	"time"

	"github.com/mariveldt/velle/internal/db"
	"github.com/mariveldt/velle/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "velle_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	repositories *db.Repositories
	authService  *services.AuthService
	periods      *services.PeriodService
	sleep        *services.SleepService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		periods:      services.NewPeriodService(repositories.Periods),
		sleep:        services.NewSleepService(repositories.Sleep),
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
}
