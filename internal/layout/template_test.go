package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

func TestApplyTemplateUnknownName(t *testing.T) {
	st := store.NewDefault()
	err := ApplyTemplate(st, "amphitheater")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestApplyTemplateTheater(t *testing.T) {
	st := store.NewDefault()
	require.NoError(t, ApplyTemplate(st, TemplateTheater))

	snap := st.Snapshot()
	require.Len(t, snap.Sections, 3)
	assert.Equal(t, "Orchestra", snap.Sections[0].Name)
	assert.Equal(t, "Mezzanine", snap.Sections[1].Name)
	assert.Equal(t, "Balcony", snap.Sections[2].Name)
	assert.Len(t, snap.Seats, 200, "10 rows of 20")

	assert.Equal(t, "STAGE", snap.Stage.Name)
	assert.Equal(t, 1200.0, snap.Stage.X)
	assert.Equal(t, 150.0, snap.Stage.Y)
	assert.Equal(t, store.DefaultFloorID, snap.Stage.FloorID)
}

func TestApplyTemplateConcert(t *testing.T) {
	st := store.NewDefault()
	require.NoError(t, ApplyTemplate(st, TemplateConcert))

	snap := st.Snapshot()
	require.Len(t, snap.Sections, 3)
	assert.Empty(t, snap.Seats, "concert template places sections only")
	assert.Equal(t, 800.0, snap.Stage.Width)
	assert.Equal(t, 200.0, snap.Stage.Height)
}

func TestApplyTemplateStadium(t *testing.T) {
	st := store.NewDefault()
	require.NoError(t, ApplyTemplate(st, TemplateStadium))

	snap := st.Snapshot()
	require.Len(t, snap.Sections, 5)
	names := make([]string, 0, 5)
	for _, sec := range snap.Sections {
		names = append(names, sec.Name)
	}
	assert.Equal(t, []string{"Field", "North Stand", "South Stand", "East Stand", "West Stand"}, names)
	assert.Empty(t, snap.Seats)
}

func TestApplyTemplateConference(t *testing.T) {
	st := store.NewDefault()
	require.NoError(t, ApplyTemplate(st, TemplateConference))

	snap := st.Snapshot()
	require.Len(t, snap.Sections, 1)
	assert.Equal(t, "Main Seating", snap.Sections[0].Name)
	assert.Len(t, snap.Seats, 168, "12 rows of 14")
	assert.Equal(t, "PODIUM", snap.Stage.Name)
}

func TestApplyTemplateTargetsActiveFloor(t *testing.T) {
	st := store.NewDefault()
	st.AddFloor(model.Floor{ID: "floor-2", Name: "Balcony", Level: 2})
	st.SetActiveFloor("floor-2")

	require.NoError(t, ApplyTemplate(st, TemplateStadium))

	for _, sec := range st.Snapshot().Sections {
		assert.Equal(t, "floor-2", sec.FloorID)
	}
}
