package model

// The update carriers below stand in for partial updates coming from the
// editor surface: a nil field means "leave unchanged".  ElementUpdate covers
// both seats and sections because the canvas addresses either kind through a
// single id (seat fields are ignored when the id resolves to a section and
// vice versa).
type ElementUpdate struct {
	// shared geometry
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	// seat fields
	Row       *string  `json:"row,omitempty"`
	Number    *int     `json:"number,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Status    *string  `json:"status,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	SectionID *string  `json:"sectionId,omitempty"`
	// section fields
	Name   *string  `json:"name,omitempty"`
	Code   *string  `json:"code,omitempty"`
	Shape  *string  `json:"shape,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Color  *string  `json:"color,omitempty"`
	// either
	FloorID *string `json:"floorId,omitempty"`
}

// FloorUpdate carries a partial floor change.
type FloorUpdate struct {
	Name  *string `json:"name,omitempty"`
	Level *int    `json:"level,omitempty"`
}

// StageUpdate carries a partial stage change.  FloorID resolution is layered:
// an explicit value wins, then the stage's current floor, then the active
// floor.
type StageUpdate struct {
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Height  *float64 `json:"height,omitempty"`
	Name    *string  `json:"name,omitempty"`
	FloorID *string  `json:"floorId,omitempty"`
}

// ApplyToSeat merges the update into a seat in place.
func (u ElementUpdate) ApplyToSeat(s *Seat) {
	if u.X != nil {
		s.X = *u.X
	}
	if u.Y != nil {
		s.Y = *u.Y
	}
	if u.Row != nil {
		s.Row = *u.Row
	}
	if u.Number != nil {
		s.Number = *u.Number
	}
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.SectionID != nil {
		s.SectionID = *u.SectionID
	}
	if u.FloorID != nil {
		s.FloorID = *u.FloorID
	}
}

// ApplyToSection merges the update into a section in place.
func (u ElementUpdate) ApplyToSection(sec *Section) {
	if u.X != nil {
		sec.X = *u.X
	}
	if u.Y != nil {
		sec.Y = *u.Y
	}
	if u.Name != nil {
		sec.Name = *u.Name
	}
	if u.Code != nil {
		sec.Code = *u.Code
	}
	if u.Shape != nil {
		sec.Shape = *u.Shape
	}
	if u.Width != nil {
		sec.Width = *u.Width
	}
	if u.Height != nil {
		sec.Height = *u.Height
	}
	if u.Color != nil {
		sec.Color = *u.Color
	}
	if u.FloorID != nil {
		sec.FloorID = *u.FloorID
	}
}
