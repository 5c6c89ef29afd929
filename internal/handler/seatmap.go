package handler

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/repository"
	"github.com/PouyaBirvand/blito/internal/store"
)

// SeatMapHandler serves the saved seat map collection plus the editor's
// export/import endpoints.
type SeatMapHandler struct {
	Repo  *repository.SeatMapRepo
	Store *store.Store
}

func NewSeatMapHandler(repo *repository.SeatMapRepo, st *store.Store) *SeatMapHandler {
	return &SeatMapHandler{Repo: repo, Store: st}
}

// List handles GET /api/seatmaps.
func (h *SeatMapHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list seat maps failed"})
	}
	if items == nil {
		items = []repository.SeatMapSummary{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /api/seatmaps/:id.
func (h *SeatMapHandler) Get(c echo.Context) error {
	m, err := h.Repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch seat map failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /api/seatmaps.  By default the current editor state
// is saved; a posted document overrides it.
func (h *SeatMapHandler) Create(c echo.Context) error {
	m := h.Store.Snapshot()
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&m); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat map document"})
		}
	}
	m.ID = "" // the repo mints ids
	if err := h.Repo.Create(c.Request().Context(), &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create seat map failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/seatmaps/:id.
func (h *SeatMapHandler) Update(c echo.Context) error {
	var m model.SeatMap
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat map document"})
	}
	if err := h.Repo.Update(c.Request().Context(), c.Param("id"), &m); err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update seat map failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/seatmaps/:id.
func (h *SeatMapHandler) Delete(c echo.Context) error {
	if err := h.Repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete seat map failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Export handles GET /api/seatmap/export: download the current map as a
// JSON file named after its title.
func (h *SeatMapHandler) Export(c echo.Context) error {
	m := h.Store.Snapshot()
	name := strings.TrimSpace(m.Title)
	if name == "" {
		name = "seat-map"
	}
	name = unsafeFilename.ReplaceAllString(strings.ReplaceAll(name, " ", "-"), "")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.json"`, name))
	return c.JSON(http.StatusOK, m)
}

// Import handles POST /api/seatmap/import: replace the current map with the
// posted document.  On a malformed body the current map is left untouched.
func (h *SeatMapHandler) Import(c echo.Context) error {
	var m model.SeatMap
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat map file format"})
	}
	h.Store.Replace(m)
	return c.JSON(http.StatusOK, h.Store.Snapshot())
}
