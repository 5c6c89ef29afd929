package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

func TestGenerateSeatGridPositionsAndLabels(t *testing.T) {
	seats := GenerateSeatGrid(100, 200, 5, 2, 3, "A", 1, model.TypeRegular, model.StatusAvailable)
	require.Len(t, seats, 6)

	// pitch is seat size plus spacing: 25
	wantX := []float64{100, 125, 150, 100, 125, 150}
	wantY := []float64{200, 200, 200, 225, 225, 225}
	wantRow := []string{"A", "A", "A", "B", "B", "B"}
	wantNum := []int{1, 2, 3, 1, 2, 3}

	for i, seat := range seats {
		assert.Equal(t, wantX[i], seat.X, "seat %d x", i)
		assert.Equal(t, wantY[i], seat.Y, "seat %d y", i)
		assert.Equal(t, wantRow[i], seat.Row, "seat %d row", i)
		assert.Equal(t, wantNum[i], seat.Number, "seat %d number", i)
		assert.Equal(t, model.TypeRegular, seat.Type)
		assert.Equal(t, model.StatusAvailable, seat.Status)
		assert.NotEmpty(t, seat.ID)
	}
}

func TestGenerateSeatGridCustomStart(t *testing.T) {
	seats := GenerateSeatGrid(0, 0, 0, 1, 2, "C", 10, model.TypeVIP, model.StatusDisabled)
	require.Len(t, seats, 2)
	assert.Equal(t, "C", seats[0].Row)
	assert.Equal(t, 10, seats[0].Number)
	assert.Equal(t, 11, seats[1].Number)
	assert.Equal(t, 20.0, seats[1].X, "zero spacing packs seats edge to edge")
}

func TestGenerateSeatGridUniqueIDs(t *testing.T) {
	seats := GenerateSeatGrid(0, 0, 5, 3, 4, "A", 1, model.TypeRegular, model.StatusAvailable)
	ids := map[string]bool{}
	for _, seat := range seats {
		assert.False(t, ids[seat.ID], "duplicate id %s", seat.ID)
		ids[seat.ID] = true
	}
}

func TestGridBounds(t *testing.T) {
	w, h := GridBounds(2, 3, 5)
	assert.Equal(t, 70.0, w)
	assert.Equal(t, 45.0, h)

	w, h = GridBounds(1, 1, 10)
	assert.Equal(t, SeatSize, w)
	assert.Equal(t, SeatSize, h)
}

func TestCreateSectionWithGrid(t *testing.T) {
	st := store.NewDefault()

	id := CreateSectionWithGrid(st, 300, 400, 2, 3, 5, "Orchestra", "#D3E4FD")
	require.NotEmpty(t, id)

	snap := st.Snapshot()
	sec := snap.SectionByID(id)
	require.NotNil(t, sec)
	assert.Equal(t, "Orchestra", sec.Name)
	assert.Equal(t, 300.0, sec.X)
	assert.Equal(t, 400.0, sec.Y)
	assert.Equal(t, 70.0, sec.Width)
	assert.Equal(t, 45.0, sec.Height)
	assert.Equal(t, store.DefaultFloorID, sec.FloorID, "defaults to the active floor")

	require.Len(t, snap.Seats, 6)
	// first seat sits at the interior margin
	assert.Equal(t, 310.0, snap.Seats[0].X)
	assert.Equal(t, 410.0, snap.Seats[0].Y)
}
