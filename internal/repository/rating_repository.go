package repository

import (
	"context"
	"database/sql"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// RatingRepo provides access to company rating records.  Ratings are
// written once and consumed read-only by the directory when computing
// average ratings.
type RatingRepo struct {
	db *sql.DB
}

// NewRatingRepo constructs a RatingRepo with the provided DB handle.
func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{db: db} }

// Create inserts a rating for a company and populates its generated ID
// and creation timestamp.
func (r *RatingRepo) Create(ctx context.Context, rt *model.Rating) error {
	const q = `INSERT INTO ratings (company_id, stars, comment) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rt.CompanyID, rt.Stars, rt.Comment)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rt.ID = uint64(id)
	const qSelect = `SELECT created_at FROM ratings WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, rt.ID).Scan(&rt.CreatedAt)
}

// ListByCompany returns all ratings for a company ordered by id.  An
// empty slice is returned when the company has no ratings.
func (r *RatingRepo) ListByCompany(ctx context.Context, companyID uint64) ([]model.Rating, error) {
	const q = `SELECT id, company_id, stars, comment, created_at
	           FROM ratings WHERE company_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Rating, 0)
	for rows.Next() {
		var rt model.Rating
		var comment sql.NullString
		if err := rows.Scan(&rt.ID, &rt.CompanyID, &rt.Stars, &comment, &rt.CreatedAt); err != nil {
			return nil, err
		}
		if comment.Valid {
			c := comment.String
			rt.Comment = &c
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
