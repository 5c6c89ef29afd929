package venue // venue converts between the flat seat map and the external document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/PouyaBirvand/blito/internal/geometry"
	"github.com/PouyaBirvand/blito/internal/model"
)

// ErrMissingVenueData is returned when the external document itself is
// absent.  Missing sub-collections inside a present document never fail;
// they are read as empty.
var ErrMissingVenueData = errors.New("no venue data provided")

// DefaultSectionColor fills in for sections whose document carries no
// background.
const DefaultSectionColor = "#D3E4FD"

// orphanPadding is the margin added around the bounding box of unassigned
// seats when a synthetic section has to be fabricated for them.
const orphanPadding = 10.0

// SeatAssignment records that the export pass matched a previously
// unassigned seat to a section by position.  FromSeatMap stays pure and
// returns these; the store applies them through its own update path so the
// reconciliation is observable afterwards.
type SeatAssignment struct {
	SeatID    string
	SectionID string
}

// ToSeatMap flattens an external venue document into the editor's seat map.
// Every nested collection tolerates being absent.  Seat positions become
// absolute (section origin plus the document's section-relative offset) and
// the boolean activity flag expands to available/disabled; richer statuses
// do not exist on the wire and cannot survive a load.
func ToSeatMap(v *model.Venue) (model.SeatMap, error) {
	if v == nil {
		return model.SeatMap{}, ErrMissingVenueData
	}

	floors := make([]model.Floor, 0, len(v.Floors))
	sections := []model.Section{}
	seats := []model.Seat{}

	for _, vf := range v.Floors {
		floors = append(floors, model.Floor{ID: vf.ID, Name: vf.Name, Level: vf.Level})

		for _, vs := range vf.Sections {
			color := vs.Background
			if color == "" {
				color = DefaultSectionColor
			}
			sections = append(sections, model.Section{
				ID:      vs.ID,
				Name:    vs.Name,
				Code:    vs.Code,
				Shape:   vs.Shape,
				X:       vs.X,
				Y:       vs.Y,
				Width:   vs.Width,
				Height:  vs.Height,
				Color:   color,
				FloorID: vf.ID,
			})

			for _, seat := range vs.Seats {
				status := model.StatusDisabled
				if seat.IsActive {
					status = model.StatusAvailable
				}
				seats = append(seats, model.Seat{
					ID:        seat.ID,
					Row:       seat.Row,
					Number:    seat.Number,
					Type:      seat.Type,
					Status:    status,
					X:         vs.X + seat.X,
					Y:         vs.Y + seat.Y,
					Price:     seat.Price,
					SectionID: vs.ID,
					FloorID:   vf.ID,
				})
			}
		}
	}

	name := v.Name
	if name == "" {
		name = "Untitled Venue"
	}
	activeFloorID := "floor-1"
	if len(floors) > 0 {
		activeFloorID = floors[0].ID
	}

	stage := model.Stage{X: 1200, Y: 100, Width: 600, Height: 80, Name: "STAGE", FloorID: activeFloorID}
	if v.Stage != (model.VenueStage{}) {
		stage = model.Stage{
			X:       v.Stage.X,
			Y:       v.Stage.Y,
			Width:   v.Stage.Width,
			Height:  v.Stage.Height,
			Name:    v.Stage.Name,
			FloorID: v.Stage.FloorID,
		}
		if stage.Name == "" {
			stage.Name = "STAGE"
		}
		if stage.FloorID == "" {
			stage.FloorID = activeFloorID
		}
	}

	return model.SeatMap{
		ID:            v.ID,
		Title:         name,
		Venue:         name,
		Stage:         stage,
		Sections:      sections,
		Seats:         seats,
		Floors:        floors,
		ActiveFloorID: activeFloorID,
	}, nil
}

// FromSeatMap nests a seat map back into the external document.  Seats
// attach to the section they reference; a section that nothing references by
// id instead adopts the seats sitting inside its rectangle (those adoptions
// are returned for write-back).  Seats that still belong nowhere are folded
// into their floor's first section, or into a fabricated section sized to
// their bounding box when the floor has none.  Ids are kept stable; only a
// missing venue id is minted.
func FromSeatMap(m model.SeatMap) (*model.Venue, []SeatAssignment) {
	var assignments []SeatAssignment
	assigned := map[string]string{} // seat id -> section id from the containment pass

	doc := &model.Venue{
		ID:   m.ID,
		Name: m.Title,
		Stage: model.VenueStage{
			X:          m.Stage.X,
			Y:          m.Stage.Y,
			Width:      m.Stage.Width,
			Height:     m.Stage.Height,
			Name:       m.Stage.Name,
			Background: "#000000",
			Color:      "#FFFFFF",
			FloorID:    m.Stage.FloorID,
		},
	}
	if doc.ID == "" {
		doc.ID = newVenueID()
	}

	doc.Floors = make([]model.VenueFloor, 0, len(m.Floors))
	for _, floor := range m.Floors {
		vf := model.VenueFloor{ID: floor.ID, Name: floor.Name, Level: floor.Level, Sections: []model.VenueSection{}}

		for _, sec := range m.Sections {
			if sec.FloorID != floor.ID {
				continue
			}

			var members []model.Seat
			for _, seat := range m.Seats {
				if seat.SectionID == sec.ID {
					members = append(members, seat)
				}
			}
			if len(members) == 0 {
				// Nothing references this section; adopt the seats that sit
				// inside its rectangle on the same floor.
				for _, seat := range m.Seats {
					if geometry.SeatWithinSection(seat, sec) {
						members = append(members, seat)
						assigned[seat.ID] = sec.ID
						assignments = append(assignments, SeatAssignment{SeatID: seat.ID, SectionID: sec.ID})
					}
				}
			}

			vs := model.VenueSection{
				ID:         sec.ID,
				Name:       sec.Name,
				Code:       sectionCode(sec),
				Shape:      "rectangle",
				X:          sec.X,
				Y:          sec.Y,
				Width:      sec.Width,
				Height:     sec.Height,
				Color:      "#FFFFFF",
				Background: sec.Color,
				Seats:      make([]model.VenueSeat, 0, len(members)),
			}
			for _, seat := range members {
				vs.Seats = append(vs.Seats, exportSeat(seat, sec.X, sec.Y))
			}
			vf.Sections = append(vf.Sections, vs)
		}

		doc.Floors = append(doc.Floors, vf)
	}

	// Fold remaining orphans in per floor.
	for fi := range doc.Floors {
		floorID := doc.Floors[fi].ID

		var orphans []model.Seat
		for _, seat := range m.Seats {
			if seat.FloorID == floorID && seat.SectionID == "" && assigned[seat.ID] == "" {
				orphans = append(orphans, seat)
			}
		}
		if len(orphans) == 0 {
			continue
		}

		if len(doc.Floors[fi].Sections) == 0 {
			minX, minY, maxX, maxY, _ := geometry.Bounds(orphans)
			synth := model.VenueSection{
				ID:         "section-orphaned-" + floorID,
				Name:       "Other Seats",
				Code:       "OTHER-",
				Shape:      "rectangle",
				X:          minX - orphanPadding,
				Y:          minY - orphanPadding,
				Width:      maxX - minX + 4*orphanPadding,
				Height:     maxY - minY + 4*orphanPadding,
				Color:      "#FFFFFF",
				Background: "#E5E7EB",
			}
			for _, seat := range orphans {
				synth.Seats = append(synth.Seats, exportSeat(seat, synth.X, synth.Y))
			}
			doc.Floors[fi].Sections = append(doc.Floors[fi].Sections, synth)
			continue
		}

		first := &doc.Floors[fi].Sections[0]
		for _, seat := range orphans {
			first.Seats = append(first.Seats, exportSeat(seat, first.X, first.Y))
		}
	}

	return doc, assignments
}

// exportSeat converts one seat to wire form relative to a section origin.
// Only "available" survives as active; every other status collapses to
// inactive on the wire.
func exportSeat(seat model.Seat, originX, originY float64) model.VenueSeat {
	return model.VenueSeat{
		ID:       seat.ID,
		Row:      seat.Row,
		Number:   seat.Number,
		X:        seat.X - originX,
		Y:        seat.Y - originY,
		Type:     seat.Type,
		IsActive: seat.Status == model.StatusAvailable,
		Price:    seat.Price,
	}
}

// sectionCode keeps an explicit code and otherwise derives one from the
// section id, e.g. "section-173..." -> "SECTION-173...-".
func sectionCode(sec model.Section) string {
	if sec.Code != "" {
		return sec.Code
	}
	part := "0"
	if pieces := strings.Split(sec.ID, "-"); len(pieces) > 1 && pieces[1] != "" {
		part = pieces[1]
	}
	return fmt.Sprintf("SECTION-%s-", part)
}

// newVenueID mints an id for a document that has never been persisted.  The
// "new-" prefix tells the save flow to adopt the server's id on first save.
func newVenueID() string {
	return "new-" + uuid.NewString()[:8]
}
