// Package queue defines message payloads exchanged over the message broker.
package queue

// VenueSavedEvent is published after a venue document is persisted.  It
// carries enough context for downstream consumers to audit or notify
// without querying the primary database.
type VenueSavedEvent struct {
	VenueID      string `json:"venue_id"`
	VenueName    string `json:"venue_name"`
	FloorCount   int    `json:"floor_count"`
	SectionCount int    `json:"section_count"`
	SeatCount    int    `json:"seat_count"`
	SavedAt      string `json:"saved_at"`
}
