package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ErrCompanyNotFound is returned when a company cannot be found in the DB.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepo encapsulates all database queries related to companies,
// including their servicio associations and rating records.  Reads
// return fully populated model.Company values so the directory can
// compute average ratings without further queries.
type CompanyRepo struct {
	db *sql.DB
}

// NewCompanyRepo constructs a CompanyRepo with the provided DB handle.
func NewCompanyRepo(db *sql.DB) *CompanyRepo { return &CompanyRepo{db: db} }

// Create inserts a new company together with its servicio associations.
// The insert and the association rows are written in one transaction.
// On success the ID and timestamp fields are populated.  ErrDuplicate
// is returned on unique constraint violations.
func (r *CompanyRepo) Create(ctx context.Context, co *model.Company) error {
	co.Email = strings.ToLower(strings.TrimSpace(co.Email))
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	const qInsert = `INSERT INTO companies (name, tic, email, phone_number, password_hash, description, logo_url)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		co.Name, co.TIC, co.Email, co.PhoneNumber, co.PasswordHash, co.Description, co.LogoURL)
	if err != nil {
		if isDuplicate(err) {
			err = ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	co.ID = uint64(id)
	if err = replaceServiciosTx(ctx, tx, co.ID, co.Servicios); err != nil {
		return err
	}
	const qSelect = `SELECT created_at, updated_at FROM companies WHERE id = ?`
	err = tx.QueryRowContext(ctx, qSelect, co.ID).Scan(&co.CreatedAt, &co.UpdatedAt)
	return err
}

// Update overwrites all mutable fields of a company and replaces its
// servicio list in full.  It returns ErrCompanyNotFound when no row
// with the given id exists and ErrDuplicate on unique violations.
func (r *CompanyRepo) Update(ctx context.Context, co *model.Company) error {
	co.Email = strings.ToLower(strings.TrimSpace(co.Email))
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	const q = `UPDATE companies
	           SET name = ?, tic = ?, email = ?, phone_number = ?, password_hash = ?,
	               description = ?, logo_url = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := tx.ExecContext(ctx, q,
		co.Name, co.TIC, co.Email, co.PhoneNumber, co.PasswordHash, co.Description, co.LogoURL, co.ID)
	if err != nil {
		if isDuplicate(err) {
			err = ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the update is a no-op, so confirm
		// existence before reporting not found.
		var one int
		if scanErr := tx.QueryRowContext(ctx, `SELECT 1 FROM companies WHERE id = ?`, co.ID).Scan(&one); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				err = ErrCompanyNotFound
				return err
			}
			err = scanErr
			return err
		}
	}
	if err = replaceServiciosTx(ctx, tx, co.ID, co.Servicios); err != nil {
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT updated_at FROM companies WHERE id = ?`, co.ID).Scan(&co.UpdatedAt)
	return err
}

// replaceServiciosTx rewrites the company_servicios association rows for
// a company.  Full replace, not merge: existing rows are deleted before
// the new list is inserted.
func replaceServiciosTx(ctx context.Context, tx *sql.Tx, companyID uint64, servicios []model.Servicio) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM company_servicios WHERE company_id = ?`, companyID); err != nil {
		return err
	}
	if len(servicios) == 0 {
		return nil
	}
	query := `INSERT INTO company_servicios (company_id, servicio_id) VALUES `
	args := make([]interface{}, 0, len(servicios)*2)
	for i, s := range servicios {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, companyID, s.ID)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByID fetches a company by id including its servicios and ratings.
// ErrCompanyNotFound is returned when no row exists.
func (r *CompanyRepo) GetByID(ctx context.Context, id uint64) (*model.Company, error) {
	const q = `SELECT id, name, tic, email, phone_number, password_hash, description, logo_url, created_at, updated_at
	           FROM companies WHERE id = ?`
	co, err := r.scanCompany(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	out := []*model.Company{co}
	if err := r.populateServicios(ctx, out); err != nil {
		return nil, err
	}
	if err := r.populateRatings(ctx, out); err != nil {
		return nil, err
	}
	return co, nil
}

// GetByEmail fetches a company by normalized email including servicios
// and ratings.  Used by the login path.  ErrCompanyNotFound is returned
// when no row exists.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, name, tic, email, phone_number, password_hash, description, logo_url, created_at, updated_at
	           FROM companies WHERE email = ? LIMIT 1`
	co, err := r.scanCompany(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		return nil, err
	}
	out := []*model.Company{co}
	if err := r.populateServicios(ctx, out); err != nil {
		return nil, err
	}
	if err := r.populateRatings(ctx, out); err != nil {
		return nil, err
	}
	return co, nil
}

// ListAll returns every company ordered by id, each populated with its
// servicios and ratings.  An empty slice is returned when the table is
// empty.
func (r *CompanyRepo) ListAll(ctx context.Context) ([]*model.Company, error) {
	const q = `SELECT id, name, tic, email, phone_number, password_hash, description, logo_url, created_at, updated_at
	           FROM companies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Company, 0)
	for rows.Next() {
		co := new(model.Company)
		var desc, logo sql.NullString
		if err := rows.Scan(&co.ID, &co.Name, &co.TIC, &co.Email, &co.PhoneNumber, &co.PasswordHash,
			&desc, &logo, &co.CreatedAt, &co.UpdatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			co.Description = &d
		}
		if logo.Valid {
			l := logo.String
			co.LogoURL = &l
		}
		out = append(out, co)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := r.populateServicios(ctx, out); err != nil {
		return nil, err
	}
	if err := r.populateRatings(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsByNameAndTIC reports whether a company with the exact (name, tic)
// pair already exists.
func (r *CompanyRepo) ExistsByNameAndTIC(ctx context.Context, name, tic string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM companies WHERE name = ? AND tic = ? LIMIT 1`, name, tic)
}

// ExistsByEmail reports whether a company with the given email exists.
func (r *CompanyRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.exists(ctx, `SELECT 1 FROM companies WHERE email = ? LIMIT 1`, email)
}

// ExistsByPhoneNumber reports whether a company with the given phone
// number exists.
func (r *CompanyRepo) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM companies WHERE phone_number = ? LIMIT 1`, phone)
}

func (r *CompanyRepo) exists(ctx context.Context, q string, args ...interface{}) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *CompanyRepo) scanCompany(row *sql.Row) (*model.Company, error) {
	var co model.Company
	var desc, logo sql.NullString
	err := row.Scan(&co.ID, &co.Name, &co.TIC, &co.Email, &co.PhoneNumber, &co.PasswordHash,
		&desc, &logo, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if desc.Valid {
		d := desc.String
		co.Description = &d
	}
	if logo.Valid {
		l := logo.String
		co.LogoURL = &l
	}
	return &co, nil
}

// populateServicios loads the servicio lists for all given companies in
// a single IN query and attaches them in servicio id order.
func (r *CompanyRepo) populateServicios(ctx context.Context, companies []*model.Company) error {
	index := make(map[uint64]*model.Company, len(companies))
	ids := make([]interface{}, 0, len(companies))
	placeholders := make([]string, 0, len(companies))
	for _, co := range companies {
		co.Servicios = []model.Servicio{}
		index[co.ID] = co
		ids = append(ids, co.ID)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT cs.company_id, s.id, s.name, s.description
	      FROM company_servicios cs
	      JOIN servicios s ON s.id = cs.servicio_id
	      WHERE cs.company_id IN (` + strings.Join(placeholders, ",") + `)
	      ORDER BY cs.company_id, s.id`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var companyID uint64
		var s model.Servicio
		var desc sql.NullString
		if err := rows.Scan(&companyID, &s.ID, &s.Name, &desc); err != nil {
			return err
		}
		if desc.Valid {
			d := desc.String
			s.Description = &d
		}
		if co, ok := index[companyID]; ok {
			co.Servicios = append(co.Servicios, s)
		}
	}
	return rows.Err()
}

// populateRatings loads the rating records for all given companies in a
// single IN query.
func (r *CompanyRepo) populateRatings(ctx context.Context, companies []*model.Company) error {
	index := make(map[uint64]*model.Company, len(companies))
	ids := make([]interface{}, 0, len(companies))
	placeholders := make([]string, 0, len(companies))
	for _, co := range companies {
		co.Ratings = []model.Rating{}
		index[co.ID] = co
		ids = append(ids, co.ID)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT id, company_id, stars, comment, created_at
	      FROM ratings
	      WHERE company_id IN (` + strings.Join(placeholders, ",") + `)
	      ORDER BY company_id, id`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rt model.Rating
		var comment sql.NullString
		if err := rows.Scan(&rt.ID, &rt.CompanyID, &rt.Stars, &comment, &rt.CreatedAt); err != nil {
			return err
		}
		if comment.Valid {
			c := comment.String
			rt.Comment = &c
		}
		if co, ok := index[rt.CompanyID]; ok {
			co.Ratings = append(co.Ratings, rt)
		}
	}
	return rows.Err()
}
