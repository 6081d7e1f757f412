package repository

import (
	"context"
	"database/sql"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ChatRepo provides access to chat linkage records.  A chat row only
// mints an identifier for an external messaging thread; the id is then
// attached to the owning reservation.
type ChatRepo struct {
	db *sql.DB
}

// NewChatRepo constructs a ChatRepo with the provided DB handle.
func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{db: db} }

// Create inserts a chat bound to a reservation and populates its
// generated ID and creation timestamp.
func (r *ChatRepo) Create(ctx context.Context, ch *model.Chat) error {
	const q = `INSERT INTO chats (reservation_id) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, ch.ReservationID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ch.ID = uint64(id)
	const qSelect = `SELECT created_at FROM chats WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, ch.ID).Scan(&ch.CreatedAt)
}
