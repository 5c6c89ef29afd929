package store

import (
	"github.com/PouyaBirvand/blito/internal/model"
	"github.com/PouyaBirvand/blito/internal/venue"
)

// ExportVenue converts the current seat map to the external document.  The
// adapter's containment pass may match unassigned seats to the section whose
// rectangle holds them; those matches are written back here through the
// normal update path, so after an export the matched seats carry the section
// reference the document shows.
func (s *Store) ExportVenue() *model.Venue {
	doc, assignments := venue.FromSeatMap(s.Snapshot())
	for _, a := range assignments {
		sectionID := a.SectionID
		s.UpdateElement(a.SeatID, model.ElementUpdate{SectionID: &sectionID})
	}
	return doc
}
