package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/queue"
	"github.com/PouyaBirvand/blito/internal/repository"
	queue_publisher "github.com/PouyaBirvand/blito/internal/service"
	"github.com/PouyaBirvand/blito/internal/store"
	"github.com/PouyaBirvand/blito/internal/venue"
)

// VenueHandler serves the persistence endpoints for the external venue
// document: fetch, save, save-from-editor and load-into-editor.
type VenueHandler struct {
	Repo  *repository.VenueRepo
	Store *store.Store
}

func NewVenueHandler(repo *repository.VenueRepo, st *store.Store) *VenueHandler {
	return &VenueHandler{Repo: repo, Store: st}
}

// Get handles GET /api/venue and returns the stored venue document.
func (h *VenueHandler) Get(c echo.Context) error {
	v, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch venue failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"venue": v}})
}

// Save handles POST /api/venue: persist the posted document as-is.  The
// event publish happens after the commit and never fails the request; a
// broker outage costs the notification, not the save.
func (h *VenueHandler) Save(c echo.Context) error {
	var v model.Venue
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue document"})
	}
	if err := h.Repo.Save(c.Request().Context(), &v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save venue failed"})
	}
	publishSaved(&v)
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"venue": v}})
}

// Sync handles POST /api/venue/sync: export the editor's current seat map
// to a venue document and persist it in one step.
func (h *VenueHandler) Sync(c echo.Context) error {
	v := h.Store.ExportVenue()
	if err := h.Repo.Save(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save venue failed"})
	}
	publishSaved(v)
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"venue": v}})
}

// Load handles POST /api/venue/load: pull the stored document, convert it
// to the editor's flat form and make it the current map.  With nothing
// stored the editor is reset to the blank layout and the miss is reported.
func (h *VenueHandler) Load(c echo.Context) error {
	v, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			h.Store.Replace(store.DefaultSeatMap())
			return c.JSON(http.StatusNotFound, echo.Map{"error": venue.ErrMissingVenueData.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch venue failed"})
	}

	m, err := venue.ToSeatMap(v)
	if err != nil {
		h.Store.Replace(store.DefaultSeatMap())
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	h.Store.Replace(m)
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"seat_map": m}})
}

// publishSaved fires the venue.saved event in the background.  Failures are
// already logged by the publisher; the save itself has committed.
func publishSaved(v *model.Venue) {
	ev := queue.VenueSavedEvent{
		VenueID:    v.ID,
		VenueName:  v.Name,
		FloorCount: len(v.Floors),
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	for _, f := range v.Floors {
		ev.SectionCount += len(f.Sections)
		for _, sec := range f.Sections {
			ev.SeatCount += len(sec.Seats)
		}
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishVenueSaved(ctx, ev); err != nil {
			log.Printf("venue: saved event not delivered: %v", err)
		}
	}()
}
