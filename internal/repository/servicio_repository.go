package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ServicioRepo provides access to the servicio catalog.  Servicios are
// reference data: created by administrators and referenced by
// companies and reservations.
type ServicioRepo struct {
	db *sql.DB
}

// NewServicioRepo constructs a ServicioRepo with the provided DB handle.
func NewServicioRepo(db *sql.DB) *ServicioRepo { return &ServicioRepo{db: db} }

// Create inserts a new servicio and populates its generated ID.
func (r *ServicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	const q = `INSERT INTO servicios (name, description) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns the full catalog ordered by id.
func (r *ServicioRepo) ListAll(ctx context.Context) ([]model.Servicio, error) {
	const q = `SELECT id, name, description FROM servicios ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Servicio, 0)
	for rows.Next() {
		var s model.Servicio
		var desc sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			s.Description = &d
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllByIDs resolves the given servicio ids to records in id order.
// Unknown ids are silently skipped rather than reported as errors, so
// the result may be shorter than the input.  Passing an empty slice
// returns an empty slice without querying.
func (r *ServicioRepo) FindAllByIDs(ctx context.Context, ids []uint64) ([]model.Servicio, error) {
	out := make([]model.Servicio, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	args := make([]interface{}, 0, len(ids))
	placeholders := make([]string, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT id, name, description FROM servicios
	      WHERE id IN (` + strings.Join(placeholders, ",") + `) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.Servicio
		var desc sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			s.Description = &d
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
