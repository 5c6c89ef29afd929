package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PouyaBirvand/blito/internal/model"
)

func TestPointInRectEdgesAreInclusive(t *testing.T) {
	assert.True(t, PointInRect(0, 0, 0, 0, 100, 50))
	assert.True(t, PointInRect(100, 50, 0, 0, 100, 50))
	assert.True(t, PointInRect(50, 25, 0, 0, 100, 50))
	assert.False(t, PointInRect(100.01, 25, 0, 0, 100, 50))
	assert.False(t, PointInRect(-0.01, 25, 0, 0, 100, 50))
}

func TestSeatWithinSectionRequiresSameFloor(t *testing.T) {
	sec := model.Section{ID: "s1", X: 100, Y: 100, Width: 200, Height: 200, FloorID: "floor-1"}

	inside := model.Seat{ID: "a", X: 150, Y: 150, FloorID: "floor-1"}
	otherFloor := model.Seat{ID: "b", X: 150, Y: 150, FloorID: "floor-2"}
	outside := model.Seat{ID: "c", X: 301, Y: 150, FloorID: "floor-1"}

	assert.True(t, SeatWithinSection(inside, sec))
	assert.False(t, SeatWithinSection(otherFloor, sec))
	assert.False(t, SeatWithinSection(outside, sec))
}

func TestTranslateSectionSeats(t *testing.T) {
	seats := []model.Seat{
		{ID: "a", SectionID: "s1", X: 10, Y: 20},
		{ID: "b", SectionID: "s2", X: 30, Y: 40},
		{ID: "c", SectionID: "s1", X: 50, Y: 60},
	}

	TranslateSectionSeats(seats, "s1", 5, -5)

	assert.Equal(t, 15.0, seats[0].X)
	assert.Equal(t, 15.0, seats[0].Y)
	assert.Equal(t, 30.0, seats[1].X, "other section untouched")
	assert.Equal(t, 40.0, seats[1].Y)
	assert.Equal(t, 55.0, seats[2].X)
	assert.Equal(t, 55.0, seats[2].Y)
}

func TestTranslateSectionSeatsZeroDeltaIsNoop(t *testing.T) {
	seats := []model.Seat{{ID: "a", SectionID: "s1", X: 10, Y: 20}}
	TranslateSectionSeats(seats, "s1", 0, 0)
	assert.Equal(t, 10.0, seats[0].X)
	assert.Equal(t, 20.0, seats[0].Y)
}

func TestBounds(t *testing.T) {
	_, _, _, _, ok := Bounds(nil)
	assert.False(t, ok)

	seats := []model.Seat{
		{X: 10, Y: 100},
		{X: -5, Y: 40},
		{X: 70, Y: 55},
	}
	minX, minY, maxX, maxY, ok := Bounds(seats)
	assert.True(t, ok)
	assert.Equal(t, -5.0, minX)
	assert.Equal(t, 40.0, minY)
	assert.Equal(t, 70.0, maxX)
	assert.Equal(t, 100.0, maxY)
}
