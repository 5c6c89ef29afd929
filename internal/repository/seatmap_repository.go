package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/PouyaBirvand/blito/internal/model"
)

// ErrSeatMapNotFound is returned when a seat map lookup yields no rows.
var ErrSeatMapNotFound = errors.New("seat map not found")

// SeatMapSummary is the listing row for saved maps; the full document is
// only loaded on demand.
type SeatMapSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeatMapRepo persists named seat map documents as JSON.  Unlike the venue
// document there can be many of these; they back the editor's open/save-as
// workflow.
type SeatMapRepo struct {
	db *sql.DB
}

// NewSeatMapRepo constructs a SeatMapRepo with the given DB handle.
func NewSeatMapRepo(db *sql.DB) *SeatMapRepo {
	return &SeatMapRepo{db: db}
}

// List returns summaries of all saved seat maps, newest first.
func (r *SeatMapRepo) List(ctx context.Context) ([]SeatMapSummary, error) {
	const q = `SELECT id, title, updated_at FROM seat_maps ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SeatMapSummary
	for rows.Next() {
		var s SeatMapSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves one seat map document.
func (r *SeatMapRepo) GetByID(ctx context.Context, id string) (*model.SeatMap, error) {
	const q = `SELECT document FROM seat_maps WHERE id = ?`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatMapNotFound
		}
		return nil, err
	}
	var m model.SeatMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new seat map document.  A missing id is minted here; the
// stored id is stamped back onto the document before writing.
func (r *SeatMapRepo) Create(ctx context.Context, m *model.SeatMap) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	const q = `INSERT INTO seat_maps (id, title, document) VALUES (?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q, m.ID, m.Title, raw)
	return err
}

// Update replaces an existing document.  Returns ErrSeatMapNotFound when the
// id does not exist.
func (r *SeatMapRepo) Update(ctx context.Context, id string, m *model.SeatMap) error {
	m.ID = id
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	const q = `UPDATE seat_maps SET title = ?, document = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, raw, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatMapNotFound
	}
	return nil
}

// Delete removes a seat map document.
func (r *SeatMapRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM seat_maps WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeatMapNotFound
	}
	return nil
}
