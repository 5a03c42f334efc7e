package resource

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Binner moves a live record into the bin; implemented by the bin service.
type Binner interface {
	MoveToBin(ctx context.Context, kind Kind, id uint) error
}

// Handler serves the uniform list/create/replace/delete surface for one kind.
type Handler[T any, PT Record[T]] struct {
	store     *Store[T, PT]
	bin       Binner
	clearable bool
}

func NewHandler[T any, PT Record[T]](store *Store[T, PT], bin Binner) *Handler[T, PT] {
	return &Handler[T, PT]{store: store, bin: bin, clearable: store.Kind() == KindPlans}
}

// Register mounts the CRUD routes for this kind on the guarded /api group.
func (h *Handler[T, PT]) Register(g *echo.Group) {
	base := "/" + string(h.store.Kind())
	g.GET(base, h.List)
	g.POST(base, h.Create)
	g.PUT(base+"/:id", h.Update)
	g.DELETE(base+"/:id", h.Delete)
	if h.clearable {
		g.POST(base+"/clear-all", h.Clear)
	}
}

func (h *Handler[T, PT]) List(c echo.Context) error {
	rows, err := h.store.ListAll(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler[T, PT]) Create(c echo.Context) error {
	rec := PT(new(T))
	if err := c.Bind(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.store.Create(c.Request().Context(), rec); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler[T, PT]) Update(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	rec := PT(new(T))
	if err := c.Bind(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.store.Replace(c.Request().Context(), id, rec)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes one record. With ?bin=true the record is first snapshotted
// into the bin; snapshot and delete run in one transaction.
func (h *Handler[T, PT]) Delete(c echo.Context) error {
	id, err := recordID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	ctx := c.Request().Context()
	if v := c.QueryParam("bin"); v == "true" || v == "1" {
		err = h.bin.MoveToBin(ctx, h.store.Kind(), id)
		if errors.Is(err, ErrNotFound) {
			err = nil // already gone, same contract as a plain delete
		}
	} else {
		err = h.store.Delete(ctx, id)
	}
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted successfully"})
}

func (h *Handler[T, PT]) Clear(c echo.Context) error {
	if err := h.store.Clear(c.Request().Context()); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "All tasks cleared"})
}

func recordID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, errors.New("bad id")
	}
	return uint(id), nil
}

func writeErr(c echo.Context, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
}
