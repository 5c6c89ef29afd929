package venue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PouyaBirvand/blito/internal/model"
)

func sampleVenue() *model.Venue {
	return &model.Venue{
		ID:   "venue-1",
		Name: "Grand Hall",
		Stage: model.VenueStage{
			X: 1000, Y: 80, Width: 500, Height: 60,
			Name: "MAIN STAGE", Background: "#000000", Color: "#FFFFFF", FloorID: "floor-1",
		},
		Floors: []model.VenueFloor{
			{
				ID: "floor-1", Name: "Ground", Level: 1,
				Sections: []model.VenueSection{
					{
						ID: "sec-1", Name: "Orchestra", Code: "ORCH-", Shape: "rectangle",
						X: 100, Y: 200, Width: 300, Height: 150, Background: "#FDE1D3",
						Seats: []model.VenueSeat{
							{ID: "seat-1", Row: "A", Number: 1, X: 20, Y: 30, Type: "regular", IsActive: true, Price: 50},
							{ID: "seat-2", Row: "A", Number: 2, X: 50, Y: 30, Type: "vip", IsActive: false, Price: 120},
						},
					},
					{
						ID: "sec-2", Name: "Side", Shape: "rectangle",
						X: 500, Y: 200, Width: 100, Height: 100,
						// no background, no seats
					},
				},
			},
			{ID: "floor-2", Name: "Balcony", Level: 2, Sections: nil},
		},
	}
}

func TestToSeatMapNilDocument(t *testing.T) {
	_, err := ToSeatMap(nil)
	assert.ErrorIs(t, err, ErrMissingVenueData)
}

func TestToSeatMapFlattens(t *testing.T) {
	m, err := ToSeatMap(sampleVenue())
	require.NoError(t, err)

	assert.Equal(t, "venue-1", m.ID)
	assert.Equal(t, "Grand Hall", m.Title)
	assert.Equal(t, "Grand Hall", m.Venue)
	assert.Equal(t, "floor-1", m.ActiveFloorID, "first floor becomes active")
	require.Len(t, m.Floors, 2)
	require.Len(t, m.Sections, 2)
	require.Len(t, m.Seats, 2)

	// positions become absolute: section origin + relative offset
	s1 := m.SeatByID("seat-1")
	require.NotNil(t, s1)
	assert.Equal(t, 120.0, s1.X)
	assert.Equal(t, 230.0, s1.Y)
	assert.Equal(t, model.StatusAvailable, s1.Status)
	assert.Equal(t, "sec-1", s1.SectionID)
	assert.Equal(t, "floor-1", s1.FloorID)

	s2 := m.SeatByID("seat-2")
	require.NotNil(t, s2)
	assert.Equal(t, model.StatusDisabled, s2.Status, "inactive expands to disabled")

	// section color comes from background, defaulting when absent
	assert.Equal(t, "#FDE1D3", m.SectionByID("sec-1").Color)
	assert.Equal(t, DefaultSectionColor, m.SectionByID("sec-2").Color)

	assert.Equal(t, "MAIN STAGE", m.Stage.Name)
	assert.Equal(t, 1000.0, m.Stage.X)
}

func TestToSeatMapToleratesEmptyDocument(t *testing.T) {
	m, err := ToSeatMap(&model.Venue{ID: "v", Name: ""})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Venue", m.Title)
	assert.Empty(t, m.Floors)
	assert.Empty(t, m.Sections)
	assert.Empty(t, m.Seats)
	assert.Equal(t, "floor-1", m.ActiveFloorID)
	// absent stage gets the default placement
	assert.Equal(t, "STAGE", m.Stage.Name)
	assert.Equal(t, 1200.0, m.Stage.X)
}

func TestRoundTripPreservesLayout(t *testing.T) {
	m, err := ToSeatMap(sampleVenue())
	require.NoError(t, err)

	doc, assignments := FromSeatMap(m)
	assert.Empty(t, assignments, "every seat already references a section")

	assert.Equal(t, "venue-1", doc.ID, "stable id survives the round trip")
	require.Len(t, doc.Floors, 2)
	require.Len(t, doc.Floors[0].Sections, 2)

	sec := doc.Floors[0].Sections[0]
	assert.Equal(t, "sec-1", sec.ID)
	assert.Equal(t, "ORCH-", sec.Code)
	assert.Equal(t, "#FDE1D3", sec.Background, "editor color maps back to background")
	require.Len(t, sec.Seats, 2)

	// relative positions are restored exactly
	assert.Equal(t, 20.0, sec.Seats[0].X)
	assert.Equal(t, 30.0, sec.Seats[0].Y)
	assert.True(t, sec.Seats[0].IsActive)
	assert.False(t, sec.Seats[1].IsActive)
}

func TestExportDegradesRichStatuses(t *testing.T) {
	m := model.SeatMap{
		ID:     "v",
		Floors: []model.Floor{{ID: "floor-1", Name: "F", Level: 1}},
		Sections: []model.Section{
			{ID: "sec-1", X: 0, Y: 0, Width: 500, Height: 500, FloorID: "floor-1"},
		},
		Seats: []model.Seat{
			{ID: "a", Status: model.StatusAvailable, SectionID: "sec-1", FloorID: "floor-1"},
			{ID: "b", Status: model.StatusSelected, SectionID: "sec-1", FloorID: "floor-1"},
			{ID: "c", Status: model.StatusReserved, SectionID: "sec-1", FloorID: "floor-1"},
			{ID: "d", Status: model.StatusSold, SectionID: "sec-1", FloorID: "floor-1"},
		},
	}

	doc, _ := FromSeatMap(m)
	seats := doc.Floors[0].Sections[0].Seats
	require.Len(t, seats, 4)
	assert.True(t, seats[0].IsActive)
	assert.False(t, seats[1].IsActive, "selected does not survive export")
	assert.False(t, seats[2].IsActive)
	assert.False(t, seats[3].IsActive)
}

func TestFromSeatMapAdoptsContainedSeats(t *testing.T) {
	m := model.SeatMap{
		ID:     "v",
		Floors: []model.Floor{{ID: "floor-1", Name: "F", Level: 1}},
		Sections: []model.Section{
			{ID: "sec-1", X: 100, Y: 100, Width: 200, Height: 200, FloorID: "floor-1"},
		},
		Seats: []model.Seat{
			{ID: "inside", X: 150, Y: 150, FloorID: "floor-1"},
			{ID: "outside", X: 900, Y: 900, FloorID: "floor-1"},
		},
	}

	doc, assignments := FromSeatMap(m)

	require.Len(t, assignments, 1)
	assert.Equal(t, "inside", assignments[0].SeatID)
	assert.Equal(t, "sec-1", assignments[0].SectionID)

	sec := doc.Floors[0].Sections[0]
	require.Len(t, sec.Seats, 2, "adopted seat plus the folded-in stray")
	assert.Equal(t, "inside", sec.Seats[0].ID)
	assert.Equal(t, 50.0, sec.Seats[0].X, "document position is section-relative")
	// the far-away seat still lands in the floor's first section
	assert.Equal(t, "outside", sec.Seats[1].ID)
}

func TestFromSeatMapDoesNotAdoptWhenSectionHasMembers(t *testing.T) {
	m := model.SeatMap{
		ID:     "v",
		Floors: []model.Floor{{ID: "floor-1", Name: "F", Level: 1}},
		Sections: []model.Section{
			{ID: "sec-1", X: 100, Y: 100, Width: 200, Height: 200, FloorID: "floor-1"},
		},
		Seats: []model.Seat{
			{ID: "member", X: 110, Y: 110, SectionID: "sec-1", FloorID: "floor-1"},
			{ID: "stray", X: 150, Y: 150, FloorID: "floor-1"},
		},
	}

	_, assignments := FromSeatMap(m)
	assert.Empty(t, assignments, "containment pass only runs for unreferenced sections")
}

func TestFromSeatMapFabricatesSectionForOrphans(t *testing.T) {
	m := model.SeatMap{
		ID:     "v",
		Floors: []model.Floor{{ID: "floor-1", Name: "F", Level: 1}},
		Seats: []model.Seat{
			{ID: "a", X: 100, Y: 200, FloorID: "floor-1"},
			{ID: "b", X: 300, Y: 400, FloorID: "floor-1"},
		},
	}

	doc, assignments := FromSeatMap(m)
	assert.Empty(t, assignments)

	require.Len(t, doc.Floors[0].Sections, 1)
	synth := doc.Floors[0].Sections[0]
	assert.Equal(t, "section-orphaned-floor-1", synth.ID)
	assert.Equal(t, "Other Seats", synth.Name)
	assert.Equal(t, 90.0, synth.X, "bounding box minus padding")
	assert.Equal(t, 190.0, synth.Y)
	assert.Equal(t, 240.0, synth.Width)
	assert.Equal(t, 240.0, synth.Height)
	require.Len(t, synth.Seats, 2)
	assert.Equal(t, 10.0, synth.Seats[0].X, "relative to the synthetic origin")
	assert.Equal(t, 10.0, synth.Seats[0].Y)
}

func TestFromSeatMapMintsIDForNewDocument(t *testing.T) {
	doc, _ := FromSeatMap(model.SeatMap{Title: "Untitled"})
	assert.True(t, strings.HasPrefix(doc.ID, "new-"))
	assert.Len(t, doc.ID, len("new-")+8)
}

func TestSectionCodeDerivation(t *testing.T) {
	assert.Equal(t, "KEEP-", sectionCode(model.Section{Code: "KEEP-"}))
	assert.Equal(t, "SECTION-1736-", sectionCode(model.Section{ID: "section-1736-orchestra"}))
	assert.Equal(t, "SECTION-0-", sectionCode(model.Section{ID: "solo"}))
}
