package model

// The venue document is the external, nested wire format exchanged with the
// persistence API: floors contain sections, sections contain seats, and seat
// coordinates are relative to their section.  The flat SeatMap above is the
// editor's working form; internal/venue converts between the two.

// VenueSeat is a seat inside the external document.  X/Y are
// section-relative.  IsActive collapses the editor's five statuses down to a
// boolean.
type VenueSeat struct {
	ID       string  `json:"id"`
	Row      string  `json:"row"`
	Number   int     `json:"number"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Type     string  `json:"type"`
	IsActive bool    `json:"is_active"`
	Price    float64 `json:"price"`
}

// VenueSection is a section inside the external document.  Background holds
// the fill color the editor shows (internal Section.Color).
type VenueSection struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Code       string      `json:"code"`
	Shape      string      `json:"shape"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Color      string      `json:"color"`
	Background string      `json:"background"`
	Seats      []VenueSeat `json:"seats"`
}

// VenueFloor is a floor inside the external document.
type VenueFloor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Level    int            `json:"level"`
	Sections []VenueSection `json:"sections"`
}

// VenueStage mirrors the internal stage plus the fixed wire-level colors.
type VenueStage struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Name       string  `json:"name"`
	Background string  `json:"background"`
	Color      string  `json:"color"`
	FloorID    string  `json:"floorId"`
}

// Venue is the top-level external document.
type Venue struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Stage  VenueStage   `json:"stage"`
	Floors []VenueFloor `json:"floors"`
}
