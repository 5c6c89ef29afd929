package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/layout"
	"github.com/PouyaBirvand/blito/internal/model"
)

// GenerateSeats handles POST /api/editor/generate/seats: place a grid of
// seats on the canvas at the given origin.
func (h *EditorHandler) GenerateSeats(c echo.Context) error {
	var req struct {
		X           float64 `json:"x"`
		Y           float64 `json:"y"`
		Spacing     float64 `json:"spacing"`
		Rows        int     `json:"rows"`
		SeatsPerRow int     `json:"seatsPerRow"`
		RowLabel    string  `json:"rowLabel"`
		StartNumber int     `json:"startNumber"`
		Type        string  `json:"type"`
		Status      string  `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rows < 1 || req.SeatsPerRow < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows and seatsPerRow must be positive"})
	}
	if req.RowLabel == "" {
		req.RowLabel = "A"
	}
	if req.StartNumber < 1 {
		req.StartNumber = 1
	}
	if req.Type == "" {
		req.Type = model.TypeRegular
	}
	if req.Status == "" {
		req.Status = model.StatusAvailable
	}

	seats := layout.GenerateSeatGrid(req.X, req.Y, req.Spacing,
		req.Rows, req.SeatsPerRow, req.RowLabel, req.StartNumber, req.Type, req.Status)
	for _, seat := range seats {
		h.Store.AddSeat(seat)
	}
	return c.JSON(http.StatusCreated, echo.Map{"added": len(seats), "seats": seats})
}

// GenerateSection handles POST /api/editor/generate/section: create a
// section sized to hold a seat grid and fill it in one shot.
func (h *EditorHandler) GenerateSection(c echo.Context) error {
	var req struct {
		X       float64 `json:"x"`
		Y       float64 `json:"y"`
		Rows    int     `json:"rows"`
		Cols    int     `json:"cols"`
		Spacing float64 `json:"spacing"`
		Name    string  `json:"name"`
		Color   string  `json:"color"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rows < 1 || req.Cols < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows and cols must be positive"})
	}
	if req.Name == "" {
		req.Name = "New Section"
	}

	id := layout.CreateSectionWithGrid(h.Store, req.X, req.Y, req.Rows, req.Cols, req.Spacing, req.Name, req.Color)
	return c.JSON(http.StatusCreated, echo.Map{"sectionId": id})
}

// ApplyTemplate handles POST /api/editor/templates/:name: replace the map
// with one of the built-in venue layouts.
func (h *EditorHandler) ApplyTemplate(c echo.Context) error {
	if err := layout.ApplyTemplate(h.Store, c.Param("name")); err != nil {
		if errors.Is(err, layout.ErrUnknownTemplate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "apply template failed"})
	}
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}
