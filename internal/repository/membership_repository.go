package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ErrMembershipNotFound is returned when a company has no membership row.
var ErrMembershipNotFound = errors.New("membership not found")

// MembershipRepo provides access to company membership records.  A
// company holds at most one membership (unique company_id).
type MembershipRepo struct {
	db *sql.DB
}

// NewMembershipRepo constructs a MembershipRepo with the provided DB handle.
func NewMembershipRepo(db *sql.DB) *MembershipRepo { return &MembershipRepo{db: db} }

// Create inserts a membership for a company and populates its generated
// ID.  ErrDuplicate is returned when the company already holds one.
func (r *MembershipRepo) Create(ctx context.Context, m *model.Membership) error {
	const q = `INSERT INTO memberships (company_id, start_date, end_date, description, price)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.CompanyID, m.StartDate, m.EndDate, m.Description, m.Price)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByCompany fetches the membership of a company.
// ErrMembershipNotFound is returned when the company has none.
func (r *MembershipRepo) GetByCompany(ctx context.Context, companyID uint64) (*model.Membership, error) {
	const q = `SELECT id, company_id, start_date, end_date, description, price
	           FROM memberships WHERE company_id = ? LIMIT 1`
	var m model.Membership
	err := r.db.QueryRowContext(ctx, q, companyID).Scan(
		&m.ID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.Description, &m.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}
