package repository // repository defines data access for persisted documents

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"encoding/json"
	"errors" // errors for sentinel definitions

	"github.com/PouyaBirvand/blito/internal/model"
)

// ErrVenueNotFound is returned when no venue document has been saved yet.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo stores the venue document.  The editor works against a single
// venue, so the table effectively holds one row keyed by the venue id; the
// document itself lives in a JSON column and the server never decomposes it
// into a relational schema.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Get retrieves the most recently saved venue document.
func (r *VenueRepo) Get(ctx context.Context) (*model.Venue, error) {
	const q = `SELECT document FROM venues ORDER BY updated_at DESC LIMIT 1`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	var v model.Venue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Save upserts the venue document.  When a document already exists its id is
// preserved: the incoming document adopts the stored id before writing, so
// repeated saves keep addressing the same venue regardless of what id the
// client minted locally.
func (r *VenueRepo) Save(ctx context.Context, v *model.Venue) error {
	if cur, err := r.Get(ctx); err == nil && cur.ID != "" {
		v.ID = cur.ID
	} else if err != nil && !errors.Is(err, ErrVenueNotFound) {
		return err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues (id, name, document)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE name = VALUES(name), document = VALUES(document), updated_at = CURRENT_TIMESTAMP`
	_, err = r.db.ExecContext(ctx, q, v.ID, v.Name, raw)
	return err
}
