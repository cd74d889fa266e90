package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/handlers"
	"github.com/dmp-tools/tokenpanel/internal/api/middleware"
	"github.com/dmp-tools/tokenpanel/internal/config"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
	"github.com/dmp-tools/tokenpanel/internal/server/routes"
	"github.com/dmp-tools/tokenpanel/internal/service"
	"github.com/dmp-tools/tokenpanel/internal/tasks"
)

// NewServer wires repositories, services, handlers and routes
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	repos := &Repositories{
		Token:   repository.NewTokenRepository(),
		Session: repository.NewSessionRepository(),
	}

	tokenService := service.NewTokenService(repos.Token)
	services := &Services{
		Token: tokenService,
		Auth:  service.NewAuthService(repos.Session, tokenService, cfg.AdminUser, cfg.AdminPassword),
	}

	h := &routes.Handlers{
		Auth:   handlers.NewAuthHandler(services.Auth),
		Health: handlers.NewHealthHandler(),
		Token:  handlers.NewTokenHandler(services.Token),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		Auth:       middleware.NewAuthMiddleware(services.Auth),
		Admin:      middleware.NewAdminMiddleware(),
	}

	routes.SetupGlobalMiddleware(router, cfg, logger)
	routes.Setup(router, h, m)

	tasksCtx, stopTasks := context.WithCancel(context.Background())

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		services:  services,
		repos:     repos,
		tasksCtx:  tasksCtx,
		stopTasks: stopTasks,
	}
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Services exposes the wired services
func (s *Server) Services() *Services {
	return s.services
}

// Start listens on the configured address and blocks until the server
// stops. It returns nil after a graceful Shutdown, including one that
// happened before Start.
func (s *Server) Start() error {
	if s.cfg.SessionCleanupInterval > 0 && s.cfg.SessionIdleTimeout > 0 {
		tasks.NewSessionCleanup(s.repos.Session, s.cfg.SessionIdleTimeout, s.cfg.SessionCleanupInterval, s.logger).Start(s.tasksCtx)
		s.logger.Info("Started session cleanup task")
	}

	s.logger.Info("Starting development server on %s", s.cfg.Addr())
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server. It is safe to call from another
// goroutine at any time, before or after Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopTasks()
	s.logger.Info("Shutting down development server")
	return s.httpServer.Shutdown(ctx)
}
