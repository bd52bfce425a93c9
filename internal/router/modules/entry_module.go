package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
	handlers "github.com/mydiaryhq/mydiary-api/internal/interface/http"
	"github.com/mydiaryhq/mydiary-api/internal/interface/middleware"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

// EntryModule wires the diary CRUD routes behind the auth middleware.
type EntryModule struct {
	Handler *handlers.EntryHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
	Logger  *logrus.Logger
}

func NewEntryModule(h *handlers.EntryHandler, jwt *helpers.JWTManager, users repository.UserRepository, logger *logrus.Logger) *EntryModule {
	return &EntryModule{Handler: h, JWT: jwt, Users: users, Logger: logger}
}

func (m *EntryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/entries")
	auth.Use(middleware.Auth(m.JWT, m.Users, m.Logger))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
