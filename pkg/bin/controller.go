package bin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"lifehub/pkg/resource"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller { return &Controller{svc: svc} }

func (h *Controller) Register(g *echo.Group) {
	g.GET("/bin", h.List)
	g.POST("/bin", h.Stage)
	g.POST("/bin/empty", h.Empty)
	g.POST("/bin/restore/:id", h.Restore)
	g.DELETE("/bin/:id", h.Purge)
}

func (h *Controller) List(c echo.Context) error {
	rows, err := h.svc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Controller) Stage(c echo.Context) error {
	var body struct {
		Source string          `json:"source"`
		Data   json.RawMessage `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Source == "" || len(body.Data) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "source and data are required"})
	}
	entry, err := h.svc.Stage(c.Request().Context(), body.Source, body.Data)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Controller) Restore(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Restore(c.Request().Context(), uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item restored"})
}

func (h *Controller) Purge(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Purge(c.Request().Context(), uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Permanently deleted"})
}

func (h *Controller) Empty(c echo.Context) error {
	if err := h.svc.Empty(c.Request().Context()); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bin emptied successfully"})
}

func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	case errors.Is(err, resource.ErrUnknownKind):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown source"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
}
