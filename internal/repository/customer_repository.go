package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ErrCustomerNotFound is returned when a customer cannot be found in the DB.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepo encapsulates all database queries related to customers.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the provided DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a new customer.  The email is normalized to lower case
// before insertion.  On success the ID, CreatedAt and UpdatedAt fields
// are populated from the stored row.  ErrDuplicate is returned when the
// email is already registered.
func (r *CustomerRepo) Create(ctx context.Context, cu *model.Customer) error {
	cu.Email = strings.ToLower(strings.TrimSpace(cu.Email))
	const qInsert = `INSERT INTO customers (first_name, last_name, email, password_hash, phone_number)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, cu.FirstName, cu.LastName, cu.Email, cu.PasswordHash, cu.PhoneNumber)
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
	cu.ID = uint64(id)

	// Query back the row to populate default timestamp fields.
	const qSelect = `SELECT created_at, updated_at FROM customers WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, cu.ID).Scan(&cu.CreatedAt, &cu.UpdatedAt)
}

// GetByID fetches a customer by id.  ErrCustomerNotFound is returned
// when no row exists.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = `SELECT id, first_name, last_name, email, password_hash, phone_number, created_at, updated_at
	           FROM customers WHERE id = ?`
	var cu model.Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&cu.ID, &cu.FirstName, &cu.LastName, &cu.Email, &cu.PasswordHash, &cu.PhoneNumber,
		&cu.CreatedAt, &cu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &cu, nil
}

// GetByEmail fetches a customer by normalized email.  ErrCustomerNotFound
// is returned when no row exists.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, first_name, last_name, email, password_hash, phone_number, created_at, updated_at
	           FROM customers WHERE email = ? LIMIT 1`
	var cu model.Customer
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&cu.ID, &cu.FirstName, &cu.LastName, &cu.Email, &cu.PasswordHash, &cu.PhoneNumber,
		&cu.CreatedAt, &cu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &cu, nil
}
