package router

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/application"
	pginfra "github.com/mydiaryhq/mydiary-api/internal/infrastructure/postgres"
	handlers "github.com/mydiaryhq/mydiary-api/internal/interface/http"
	"github.com/mydiaryhq/mydiary-api/internal/router/modules"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

// Deps holds the shared infrastructure every module is built from.
type Deps struct {
	Pool          *pgxpool.Pool
	Redis         *redis.Client
	JWT           *helpers.JWTManager
	Logger        *logrus.Logger
	EntryCacheTTL time.Duration
}

// InitModules builds all feature modules and registers them with the registry.
// Called once during application startup.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.Pool)
	entryRepo := pginfra.NewEntryRepository(d.Pool)

	authSvc := application.NewAuthService(userRepo, d.JWT, d.Logger)
	entrySvc := application.NewEntryService(entryRepo, d.Redis, d.EntryCacheTTL, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger)))
	r.Add(modules.NewEntryModule(handlers.NewEntryHandler(entrySvc, d.Logger), d.JWT, userRepo, d.Logger))
}
