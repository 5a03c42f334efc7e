// Package health serves the unauthenticated liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller { return &Controller{db: db} }

func (h *Controller) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := ""
	if sqlDB, err := h.db.DB(); err != nil {
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if dbErr != "" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]bool{"ok": dbErr == ""},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": map[string]string{"err": dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
