package geometry // geometry holds pure rectangle and translation helpers

import "github.com/PouyaBirvand/blito/internal/model"

// PointInRect reports whether the point (px, py) lies inside the rectangle
// with origin (rx, ry) and the given size.  Bounds are inclusive on all
// edges, matching how the canvas hit-tests seats against sections.
func PointInRect(px, py, rx, ry, width, height float64) bool {
	return px >= rx && px <= rx+width && py >= ry && py <= ry+height
}

// SeatWithinSection reports whether a seat sits inside a section's rectangle
// on the same floor.  Used by the export reconciliation pass to adopt seats
// that lack a section reference.
func SeatWithinSection(seat model.Seat, sec model.Section) bool {
	if seat.FloorID != sec.FloorID {
		return false
	}
	return PointInRect(seat.X, seat.Y, sec.X, sec.Y, sec.Width, sec.Height)
}

// TranslateSectionSeats shifts every seat referencing sectionID by (dx, dy)
// in place.  Seat coordinates are stored absolute, so a section move must
// carry its members along explicitly.
func TranslateSectionSeats(seats []model.Seat, sectionID string, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for i := range seats {
		if seats[i].SectionID == sectionID {
			seats[i].X += dx
			seats[i].Y += dy
		}
	}
}

// Bounds returns the tight bounding box of the given seats.  ok is false for
// an empty slice.
func Bounds(seats []model.Seat) (minX, minY, maxX, maxY float64, ok bool) {
	if len(seats) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = seats[0].X, seats[0].X
	minY, maxY = seats[0].Y, seats[0].Y
	for _, s := range seats[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return minX, minY, maxX, maxY, true
}
