package layout // layout synthesizes seats in bulk from grid and template recipes

import (
	"fmt"
	"time"

	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/store"
)

// SeatSize is the rendered edge length of a seat on the canvas; grid spacing
// is measured between seat edges.
const SeatSize = 20.0

// sectionMargin is the interior offset between a generated section's border
// and its first seat.
const sectionMargin = 10.0

// GenerateSeatGrid produces rows*seatsPerRow seats laid out in a grid whose
// top-left seat sits at (originX, originY).  Row labels advance one
// character per row starting from the first character of rowLabel; seat
// numbers count up from startNumber within each row.  The generator is
// pure: callers add the seats to the store themselves.
func GenerateSeatGrid(originX, originY, spacing float64, rows, seatsPerRow int, rowLabel string, startNumber int, seatType, status string) []model.Seat {
	if rowLabel == "" {
		rowLabel = "A"
	}
	rowChar := rune(rowLabel[0])
	stamp := time.Now().UnixMilli()

	seats := make([]model.Seat, 0, rows*seatsPerRow)
	for row := 0; row < rows; row++ {
		label := string(rowChar + rune(row))
		for col := 0; col < seatsPerRow; col++ {
			number := startNumber + col
			seats = append(seats, model.Seat{
				ID:     fmt.Sprintf("seat-%d-%s-%d", stamp, label, number),
				Row:    label,
				Number: number,
				Type:   seatType,
				Status: status,
				X:      originX + float64(col)*(SeatSize+spacing),
				Y:      originY + float64(row)*(SeatSize+spacing),
			})
		}
	}
	return seats
}

// GridBounds returns the width and height of the rectangle that exactly
// bounds a rows×cols grid with the given spacing.
func GridBounds(rows, cols int, spacing float64) (width, height float64) {
	width = float64(cols)*(SeatSize+spacing) - spacing
	height = float64(rows)*(SeatSize+spacing) - spacing
	return width, height
}

// CreateSectionWithGrid adds a section sized to bound a rows×cols grid and
// fills it with seats offset by the interior margin.  The section id is
// returned so callers can select it afterwards.
func CreateSectionWithGrid(st *store.Store, x, y float64, rows, cols int, spacing float64, name, color string) string {
	width, height := GridBounds(rows, cols, spacing)
	sectionID := fmt.Sprintf("section-%d", time.Now().UnixMilli())

	st.AddSection(model.Section{
		ID:     sectionID,
		Name:   name,
		Shape:  "rectangle",
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Color:  color,
	})

	for _, seat := range GenerateSeatGrid(x+sectionMargin, y+sectionMargin, spacing, rows, cols, "A", 1, model.TypeRegular, model.StatusAvailable) {
		st.AddSeat(seat)
	}
	return sectionID
}
