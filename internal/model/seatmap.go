package model // model defines the in-memory seat map entities

// Seat status values.  The external venue document only distinguishes
// active/inactive, so every status outside available/disabled is lossy on
// export (see internal/venue).
const (
	StatusAvailable = "available"
	StatusDisabled  = "disabled"
	StatusSelected  = "selected"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
)

// Seat type values.  The set is open ended; these are the ones the editor
// tooling produces.
const (
	TypeRegular  = "regular"
	TypeVIP      = "vip"
	TypeDisabled = "disabled"
)

// Floor is one labeled level of the venue.  Level is a display ordering
// integer and is not required to be unique.
type Floor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Section is a named rectangular grouping of seats on one floor.  The
// rectangle is expressed in the floor's global coordinate space.
type Section struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code,omitempty"`
	Shape   string  `json:"shape"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Color   string  `json:"color"`
	FloorID string  `json:"floorId"`
}

// Seat is a single seat.  X/Y are absolute coordinates in the same global
// space as the floor's sections and stage.  SectionID is a weak
// back-reference used for grouping and group moves; it is not ownership.
// RelativeX/RelativeY are recorded alongside the absolute position when a
// seat is explicitly attached to a section.
type Seat struct {
	ID        string   `json:"id"`
	Row       string   `json:"row"`
	Number    int      `json:"number"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Price     float64  `json:"price,omitempty"`
	SectionID string   `json:"sectionId,omitempty"`
	FloorID   string   `json:"floorId"`
	RelativeX *float64 `json:"relativeX,omitempty"`
	RelativeY *float64 `json:"relativeY,omitempty"`
}

// Stage is the single performance-area rectangle.  It is a singleton per
// seat map but tagged with the floor it currently renders on.
type Stage struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Name    string  `json:"name"`
	FloorID string  `json:"floorId"`
}

// SeatMap is the aggregate root for one venue layout.  Sections and seats
// are flat lists that reference floors (and each other) by id.
type SeatMap struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Venue         string    `json:"venue"`
	Stage         Stage     `json:"stage"`
	Sections      []Section `json:"sections"`
	Seats         []Seat    `json:"seats"`
	Floors        []Floor   `json:"floors"`
	ActiveFloorID string    `json:"activeFloorId"`
}

// Clone returns a deep copy of the seat map.  The store hands out clones so
// that no caller can alias its owned snapshot.
func (m SeatMap) Clone() SeatMap {
	out := m
	out.Sections = append([]Section(nil), m.Sections...)
	out.Floors = append([]Floor(nil), m.Floors...)
	out.Seats = make([]Seat, len(m.Seats))
	for i, s := range m.Seats {
		out.Seats[i] = s
		if s.RelativeX != nil {
			rx := *s.RelativeX
			out.Seats[i].RelativeX = &rx
		}
		if s.RelativeY != nil {
			ry := *s.RelativeY
			out.Seats[i].RelativeY = &ry
		}
	}
	return out
}

// FloorByID returns the floor with the given id, or nil.
func (m *SeatMap) FloorByID(id string) *Floor {
	for i := range m.Floors {
		if m.Floors[i].ID == id {
			return &m.Floors[i]
		}
	}
	return nil
}

// SectionByID returns the section with the given id, or nil.
func (m *SeatMap) SectionByID(id string) *Section {
	for i := range m.Sections {
		if m.Sections[i].ID == id {
			return &m.Sections[i]
		}
	}
	return nil
}

// SeatByID returns the seat with the given id, or nil.
func (m *SeatMap) SeatByID(id string) *Seat {
	for i := range m.Seats {
		if m.Seats[i].ID == id {
			return &m.Seats[i]
		}
	}
	return nil
}
