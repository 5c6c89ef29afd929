package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

// AddFloor handles POST /api/editor/floors.
func (h *EditorHandler) AddFloor(c echo.Context) error {
	var f model.Floor
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid floor"})
	}
	if f.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "floor id required"})
	}
	h.Store.AddFloor(f)
	return c.JSON(http.StatusCreated, f)
}

// UpdateFloor handles PATCH /api/editor/floors/:id.
func (h *EditorHandler) UpdateFloor(c echo.Context) error {
	var up model.FloorUpdate
	if err := c.Bind(&up); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ok := h.Store.UpdateFloor(c.Param("id"), up)
	return c.JSON(http.StatusOK, echo.Map{"updated": ok})
}

// RemoveFloor handles DELETE /api/editor/floors/:id.  The last floor cannot
// be removed; that comes back as a conflict.
func (h *EditorHandler) RemoveFloor(c echo.Context) error {
	if err := h.Store.RemoveFloor(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrLastFloor) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove floor failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ActivateFloor handles POST /api/editor/floors/:id/activate.
func (h *EditorHandler) ActivateFloor(c echo.Context) error {
	h.Store.SetActiveFloor(c.Param("id"))
	return c.JSON(http.StatusOK, echo.Map{"activeFloorId": c.Param("id")})
}
