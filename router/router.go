package router

import (
	"github.com/labstack/echo/v4"

	"lifehub/pkg/auth"
	"lifehub/pkg/health"
)

// Registrar is anything that mounts its own routes on the guarded API group;
// every resource handler and controller implements it.
type Registrar interface {
	Register(g *echo.Group)
}

// New mounts the health probe openly and everything else behind the secret
// gate under /api.
func New(
	e *echo.Echo,
	gate *auth.Gate,
	healthCtrl *health.Controller,
	registrars ...Registrar,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api", gate.Middleware())
	for _, r := range registrars {
		r.Register(api)
	}
	return e
}
