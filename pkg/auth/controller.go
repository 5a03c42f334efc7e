package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Controller struct {
	gate *Gate
}

func NewController(gate *Gate) *Controller { return &Controller{gate: gate} }

// Register mounts the auth endpoints on the guarded /api group; reaching them
// at all already proves the caller holds the current secret.
func (h *Controller) Register(g *echo.Group) {
	g.GET("/auth/verify", h.Verify)
	g.PUT("/settings/password", h.ChangePassword)
}

func (h *Controller) Verify(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"valid":   true,
		"message": "Authentication successful",
	})
}

func (h *Controller) ChangePassword(c echo.Context) error {
	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	err := h.gate.SetSecret(c.Request().Context(), body.NewPassword)
	if errors.Is(err, ErrSecretTooShort) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid password. Minimum 4 characters."})
	}
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
