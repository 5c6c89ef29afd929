package store // store owns the single in-memory seat map and all mutations on it

import (
	"errors"
	"sync"

	"github.com/PouyaBirvand/blito/internal/geometry"
	"github.com/PouyaBirvand/blito/internal/model"
)

// ErrLastFloor is returned when a caller tries to remove the only remaining
// floor.  The store refuses rather than leaving the map floorless.
var ErrLastFloor = errors.New("cannot remove the last floor")

// ErrSectionNotFound is returned by AddSeatToSection when the target section
// does not exist.
var ErrSectionNotFound = errors.New("section not found")

// DefaultFloorID is the id of the floor every fresh seat map starts with.
const DefaultFloorID = "floor-1"

// Store is the exclusive owner of the current seat map.  Every mutation runs
// under a single writer lock and leaves the map consistent; readers get deep
// copies so no snapshot can alias the owned value.  Most reference failures
// are deliberate no-ops: callers derive ids from a snapshot they just took,
// so a miss means the element is already gone.
type Store struct {
	mu      sync.RWMutex
	seatMap model.SeatMap
}

// New returns a store owning the given seat map.
func New(m model.SeatMap) *Store {
	return &Store{seatMap: m.Clone()}
}

// NewDefault returns a store seeded with the editor's blank layout: one main
// floor and a stage at the top of the canvas.
func NewDefault() *Store {
	return New(DefaultSeatMap())
}

// DefaultSeatMap builds the blank layout used on startup and as the fallback
// when loading a venue fails.
func DefaultSeatMap() model.SeatMap {
	return model.SeatMap{
		Title: "New Seat Map",
		Venue: "New Venue",
		Stage: model.Stage{
			X: 1200, Y: 100, Width: 600, Height: 80,
			Name: "STAGE", FloorID: DefaultFloorID,
		},
		Sections:      []model.Section{},
		Seats:         []model.Seat{},
		Floors:        []model.Floor{{ID: DefaultFloorID, Name: "Main Floor", Level: 1}},
		ActiveFloorID: DefaultFloorID,
	}
}

// Snapshot returns a deep copy of the current seat map.
func (s *Store) Snapshot() model.SeatMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seatMap.Clone()
}

// Replace swaps in an entirely new seat map.  Used by load, import and
// reset; the shape is trusted as-is.
func (s *Store) Replace(m model.SeatMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap = m.Clone()
}

// SetTitle renames the map.
func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap.Title = title
}

// SetVenueName renames the venue the map belongs to.
func (s *Store) SetVenueName(venue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap.Venue = venue
}

// AddSeat appends a seat.  A missing floor reference defaults to the active
// floor; no further referential checks are made.
func (s *Store) AddSeat(seat model.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seat.FloorID == "" {
		seat.FloorID = s.seatMap.ActiveFloorID
	}
	s.seatMap.Seats = append(s.seatMap.Seats, seat)
}

// AddSection appends a section, defaulting its floor to the active one.
func (s *Store) AddSection(sec model.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec.FloorID == "" {
		sec.FloorID = s.seatMap.ActiveFloorID
	}
	s.seatMap.Sections = append(s.seatMap.Sections, sec)
}

// UpdateElement applies a partial update to the seat or section with the
// given id.  Seats are checked first; on the (never expected) id collision a
// seat wins.  When a section's position changes, every seat referencing it
// is translated by the same delta so the group stays geometrically intact.
// An unknown id is a no-op and returns false.
func (s *Store) UpdateElement(id string, up model.ElementUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seat := s.seatMap.SeatByID(id); seat != nil {
		up.ApplyToSeat(seat)
		return true
	}

	sec := s.seatMap.SectionByID(id)
	if sec == nil {
		return false
	}
	oldX, oldY := sec.X, sec.Y
	up.ApplyToSection(sec)
	geometry.TranslateSectionSeats(s.seatMap.Seats, id, sec.X-oldX, sec.Y-oldY)
	return true
}

// UpdateSection is the section-typed entry point for the same operation.
// Member seats move only when the update carries both coordinates, matching
// how the canvas reports section drags.
func (s *Store) UpdateSection(id string, up model.ElementUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := s.seatMap.SectionByID(id)
	if sec == nil {
		return false
	}
	oldX, oldY := sec.X, sec.Y
	up.ApplyToSection(sec)
	if up.X != nil && up.Y != nil {
		geometry.TranslateSectionSeats(s.seatMap.Seats, id, sec.X-oldX, sec.Y-oldY)
	}
	return true
}

// UpdateStage merges a partial update into the singleton stage.  The floor
// tag resolves in order: explicit update, current stage floor, active floor.
func (s *Store) UpdateStage(up model.StageUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &s.seatMap.Stage
	if up.X != nil {
		st.X = *up.X
	}
	if up.Y != nil {
		st.Y = *up.Y
	}
	if up.Width != nil {
		st.Width = *up.Width
	}
	if up.Height != nil {
		st.Height = *up.Height
	}
	if up.Name != nil {
		st.Name = *up.Name
	}
	switch {
	case up.FloorID != nil && *up.FloorID != "":
		st.FloorID = *up.FloorID
	case st.FloorID != "":
		// keep the current floor
	default:
		st.FloorID = s.seatMap.ActiveFloorID
	}
}

// RemoveElement deletes a section (cascading to every seat that references
// it) or, failing that, the seat with the given id.  Unknown ids are a
// no-op.
func (s *Store) RemoveElement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seatMap.SectionByID(id) != nil {
		sections := s.seatMap.Sections[:0]
		for _, sec := range s.seatMap.Sections {
			if sec.ID != id {
				sections = append(sections, sec)
			}
		}
		s.seatMap.Sections = sections

		seats := s.seatMap.Seats[:0]
		for _, seat := range s.seatMap.Seats {
			if seat.SectionID != id {
				seats = append(seats, seat)
			}
		}
		s.seatMap.Seats = seats
		return
	}

	seats := s.seatMap.Seats[:0]
	for _, seat := range s.seatMap.Seats {
		if seat.ID != id {
			seats = append(seats, seat)
		}
	}
	s.seatMap.Seats = seats
}

// RemoveAllSeats clears the seat list, leaving sections, floors and the
// stage untouched.
func (s *Store) RemoveAllSeats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap.Seats = []model.Seat{}
}

// AddFloor appends a floor.  If no floor is active yet, the new floor
// becomes active.
func (s *Store) AddFloor(f model.Floor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap.Floors = append(s.seatMap.Floors, f)
	if s.seatMap.ActiveFloorID == "" {
		s.seatMap.ActiveFloorID = f.ID
	}
}

// SetActiveFloor switches the active floor without checking existence;
// callers pick ids from the floor list they just rendered.
func (s *Store) SetActiveFloor(floorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatMap.ActiveFloorID = floorID
}

// UpdateFloor merges a partial update into a floor.  Unknown ids are a
// no-op and return false.
func (s *Store) UpdateFloor(id string, up model.FloorUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.seatMap.FloorByID(id)
	if f == nil {
		return false
	}
	if up.Name != nil {
		f.Name = *up.Name
	}
	if up.Level != nil {
		f.Level = *up.Level
	}
	return true
}

// RemoveFloor deletes a floor together with its sections and seats.  The
// last remaining floor is protected.  If the removed floor was active, the
// first remaining floor takes over, and a stage stranded on the removed
// floor follows it there.
func (s *Store) RemoveFloor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.seatMap.Floors) <= 1 {
		return ErrLastFloor
	}
	if s.seatMap.FloorByID(id) == nil {
		return nil
	}

	floors := s.seatMap.Floors[:0]
	for _, f := range s.seatMap.Floors {
		if f.ID != id {
			floors = append(floors, f)
		}
	}
	s.seatMap.Floors = floors

	if s.seatMap.ActiveFloorID == id {
		s.seatMap.ActiveFloorID = floors[0].ID
	}

	seats := s.seatMap.Seats[:0]
	for _, seat := range s.seatMap.Seats {
		if seat.FloorID != id {
			seats = append(seats, seat)
		}
	}
	s.seatMap.Seats = seats

	sections := s.seatMap.Sections[:0]
	for _, sec := range s.seatMap.Sections {
		if sec.FloorID != id {
			sections = append(sections, sec)
		}
	}
	s.seatMap.Sections = sections

	if s.seatMap.Stage.FloorID == id {
		s.seatMap.Stage.FloorID = s.seatMap.ActiveFloorID
	}
	return nil
}

// AddSeatToSection attaches a seat to an existing section, recording its
// position relative to the section rectangle alongside the absolute one and
// stamping the section's floor.  A missing section rejects the whole call.
func (s *Store) AddSeatToSection(seat model.Seat, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := s.seatMap.SectionByID(sectionID)
	if sec == nil {
		return ErrSectionNotFound
	}
	relX := seat.X - sec.X
	relY := seat.Y - sec.Y
	seat.SectionID = sectionID
	seat.RelativeX = &relX
	seat.RelativeY = &relY
	seat.FloorID = sec.FloorID
	s.seatMap.Seats = append(s.seatMap.Seats, seat)
	return nil
}
