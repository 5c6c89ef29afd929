package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

// EditorHandler exposes the in-memory seat map to the canvas client.  Every
// endpoint here is a thin translation between HTTP and a store operation;
// the store enforces consistency.
type EditorHandler struct {
	Store *store.Store
}

func NewEditorHandler(st *store.Store) *EditorHandler {
	return &EditorHandler{Store: st}
}

// GetSeatMap handles GET /api/editor/seatmap.
func (h *EditorHandler) GetSeatMap(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}

// ReplaceSeatMap handles PUT /api/editor/seatmap: swap in a whole new map.
func (h *EditorHandler) ReplaceSeatMap(c echo.Context) error {
	var m model.SeatMap
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat map document"})
	}
	h.Store.Replace(m)
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}

// UpdateMeta handles PATCH /api/editor/map: rename the map and/or venue.
func (h *EditorHandler) UpdateMeta(c echo.Context) error {
	var req struct {
		Title *string `json:"title"`
		Venue *string `json:"venue"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title != nil {
		h.Store.SetTitle(*req.Title)
	}
	if req.Venue != nil {
		h.Store.SetVenueName(*req.Venue)
	}
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}

// AddSeat handles POST /api/editor/seats.
func (h *EditorHandler) AddSeat(c echo.Context) error {
	var seat model.Seat
	if err := c.Bind(&seat); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat"})
	}
	if seat.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat id required"})
	}
	h.Store.AddSeat(seat)
	return c.JSON(http.StatusCreated, seat)
}

// AddSection handles POST /api/editor/sections.
func (h *EditorHandler) AddSection(c echo.Context) error {
	var sec model.Section
	if err := c.Bind(&sec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid section"})
	}
	if sec.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "section id required"})
	}
	h.Store.AddSection(sec)
	return c.JSON(http.StatusCreated, sec)
}

// UpdateElement handles PATCH /api/editor/elements/:id.  An unknown id is
// not an error for the canvas: it reports updated=false and moves on.
func (h *EditorHandler) UpdateElement(c echo.Context) error {
	var up model.ElementUpdate
	if err := c.Bind(&up); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ok := h.Store.UpdateElement(c.Param("id"), up)
	return c.JSON(http.StatusOK, echo.Map{"updated": ok})
}

// UpdateSection handles PATCH /api/editor/sections/:id.
func (h *EditorHandler) UpdateSection(c echo.Context) error {
	var up model.ElementUpdate
	if err := c.Bind(&up); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ok := h.Store.UpdateSection(c.Param("id"), up)
	return c.JSON(http.StatusOK, echo.Map{"updated": ok})
}

// RemoveElement handles DELETE /api/editor/elements/:id.  Removing a
// section also removes its seats; unknown ids succeed silently.
func (h *EditorHandler) RemoveElement(c echo.Context) error {
	h.Store.RemoveElement(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// RemoveAllSeats handles DELETE /api/editor/seats.
func (h *EditorHandler) RemoveAllSeats(c echo.Context) error {
	h.Store.RemoveAllSeats()
	return c.NoContent(http.StatusNoContent)
}

// AddSeatToSection handles POST /api/editor/sections/:id/seats.
func (h *EditorHandler) AddSeatToSection(c echo.Context) error {
	var seat model.Seat
	if err := c.Bind(&seat); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat"})
	}
	if err := h.Store.AddSeatToSection(seat, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add seat failed"})
	}
	return c.JSON(http.StatusCreated, seat)
}

// UpdateStage handles PATCH /api/editor/stage.
func (h *EditorHandler) UpdateStage(c echo.Context) error {
	var up model.StageUpdate
	if err := c.Bind(&up); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Store.UpdateStage(up)
	return c.JSON(http.StatusOK, h.Store.Snapshot().Stage)
}
