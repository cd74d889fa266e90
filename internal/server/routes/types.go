package routes

import (
	"github.com/dmp-tools/tokenpanel/internal/api/handlers"
	"github.com/dmp-tools/tokenpanel/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	Token  *handlers.TokenHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	Auth       *middleware.AuthMiddleware
	Admin      *middleware.AdminMiddleware
}
