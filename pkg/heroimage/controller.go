package heroimage

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	store *Store
}

func NewController(store *Store) *Controller { return &Controller{store: store} }

func (h *Controller) Register(g *echo.Group) {
	g.GET("/hero-images/:pageKey", h.Get)
	g.POST("/hero-images", h.Set)
	g.DELETE("/hero-images/:pageKey", h.Delete)
}

func (h *Controller) Get(c echo.Context) error {
	img, ok, err := h.store.Get(c.Request().Context(), c.Param("pageKey"))
	if err != nil {
		return writeErr(c, err)
	}
	var image any
	if ok {
		image = img
	}
	return c.JSON(http.StatusOK, map[string]any{"image": image})
}

func (h *Controller) Set(c echo.Context) error {
	var body struct {
		PageKey   string `json:"pageKey"`
		ImageData string `json:"imageData"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.PageKey == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "pageKey is required"})
	}
	if err := h.store.Set(c.Request().Context(), body.PageKey, body.ImageData); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Controller) Delete(c echo.Context) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("pageKey")); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func writeErr(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
}
