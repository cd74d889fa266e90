package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/config"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
	"github.com/dmp-tools/tokenpanel/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	logger     *logging.Logger
	httpServer *http.Server
	services   *Services
	repos      *Repositories

	tasksCtx  context.Context
	stopTasks context.CancelFunc
}

// Repositories holds all repository instances
type Repositories struct {
	Token   repository.TokenRepository
	Session repository.SessionRepository
}

// Services holds all service instances
type Services struct {
	Token *service.TokenService
	Auth  *service.AuthService
}
