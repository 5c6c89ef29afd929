package layout

import (
	"errors"
	"fmt"
	"time"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

// Template names accepted by ApplyTemplate.
const (
	TemplateTheater    = "theater"
	TemplateConcert    = "concert"
	TemplateStadium    = "stadium"
	TemplateConference = "conference"
)

// ErrUnknownTemplate is returned for a template name outside the fixed set.
var ErrUnknownTemplate = errors.New("unknown venue template")

// Templates are hand-authored recipes placed on a fixed 3000x3000 canvas.
const (
	canvasWidth  = 3000.0
	canvasHeight = 3000.0
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// ApplyTemplate composes one of the fixed venue recipes onto the active
// floor: a stage placement, a handful of sections and, for some templates,
// an example grid of seats.  All positions are absolute canvas coordinates.
func ApplyTemplate(st *store.Store, name string) error {
	activeFloorID := st.Snapshot().ActiveFloorID
	stamp := time.Now().UnixMilli()
	sectionID := func(suffix string) string {
		return fmt.Sprintf("section-%d-%s", stamp, suffix)
	}

	switch name {
	case TemplateTheater:
		st.UpdateStage(model.StageUpdate{
			X: floatPtr(canvasWidth/2 - 300), Y: floatPtr(150),
			Width: floatPtr(600), Height: floatPtr(80),
			Name: strPtr("STAGE"), FloorID: &activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("orchestra"), Name: "Orchestra", Color: "#D3E4FD",
			X: canvasWidth/2 - 250, Y: 250, Width: 500, Height: 400,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("mezzanine"), Name: "Mezzanine", Color: "#FDE1D3",
			X: canvasWidth/2 - 350, Y: 680, Width: 700, Height: 300,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("balcony"), Name: "Balcony", Color: "#F2FCE2",
			X: canvasWidth/2 - 400, Y: 1010, Width: 800, Height: 250,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		for _, seat := range GenerateSeatGrid(canvasWidth/2-200, 280, 10, 10, 20, "A", 1, model.TypeRegular, model.StatusAvailable) {
			st.AddSeat(seat)
		}

	case TemplateConcert:
		st.UpdateStage(model.StageUpdate{
			X: floatPtr(canvasWidth/2 - 400), Y: floatPtr(150),
			Width: floatPtr(800), Height: floatPtr(200),
			Name: strPtr("STAGE"), FloorID: &activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("front"), Name: "Front Section", Color: "#D946EF",
			X: canvasWidth/2 - 350, Y: 400, Width: 700, Height: 300,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("mid"), Name: "Middle Section", Color: "#9b87f5",
			X: canvasWidth/2 - 450, Y: 750, Width: 900, Height: 350,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("rear"), Name: "Rear Section", Color: "#D3E4FD",
			X: canvasWidth/2 - 500, Y: 1150, Width: 1000, Height: 400,
			Shape: "rectangle", FloorID: activeFloorID,
		})

	case TemplateStadium:
		st.AddSection(model.Section{
			ID: sectionID("field"), Name: "Field", Color: "#F2FCE2",
			X: canvasWidth/2 - 400, Y: canvasHeight/2 - 250, Width: 800, Height: 500,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("north"), Name: "North Stand", Color: "#FDE1D3",
			X: canvasWidth/2 - 400, Y: canvasHeight/2 - 400, Width: 800, Height: 100,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("south"), Name: "South Stand", Color: "#FDE1D3",
			X: canvasWidth/2 - 400, Y: canvasHeight/2 + 300, Width: 800, Height: 100,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("east"), Name: "East Stand", Color: "#E5DEFF",
			X: canvasWidth/2 - 550, Y: canvasHeight/2 - 250, Width: 100, Height: 500,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("west"), Name: "West Stand", Color: "#E5DEFF",
			X: canvasWidth/2 + 450, Y: canvasHeight/2 - 250, Width: 100, Height: 500,
			Shape: "rectangle", FloorID: activeFloorID,
		})

	case TemplateConference:
		st.UpdateStage(model.StageUpdate{
			X: floatPtr(canvasWidth/2 - 250), Y: floatPtr(150),
			Width: floatPtr(500), Height: floatPtr(100),
			Name: strPtr("PODIUM"), FloorID: &activeFloorID,
		})
		st.AddSection(model.Section{
			ID: sectionID("main"), Name: "Main Seating", Color: "#F1F0FB",
			X: canvasWidth/2 - 350, Y: 300, Width: 700, Height: 600,
			Shape: "rectangle", FloorID: activeFloorID,
		})
		for _, seat := range GenerateSeatGrid(canvasWidth/2-300, 330, 15, 12, 14, "A", 1, model.TypeRegular, model.StatusAvailable) {
			st.AddSeat(seat)
		}

	default:
		return ErrUnknownTemplate
	}
	return nil
}
