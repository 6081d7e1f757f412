package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
)

// ErrReservationNotFound is returned when a reservation cannot be found
// in the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations and their
// requested servicio lists.  A reservation binds one customer to one
// company; the servicios requested for the move are stored in the
// reservation_servicios table.  All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create inserts a new reservation together with its servicio rows in a
// single transaction.  It populates the generated ID and timestamp
// fields on the provided record.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
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
	const q = `INSERT INTO reservations
	           (company_id, customer_id, start_date, start_time, end_date, origin_address, destination_address, price, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.CompanyID, res.CustomerID, res.StartDate, res.StartTime, res.EndDate,
		res.OriginAddress, res.DestinationAddress, res.Price, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	if err = createServiciosBulkTx(ctx, tx, res.ID, res.Servicios); err != nil {
		return err
	}
	const sel = `SELECT created_at, updated_at FROM reservations WHERE id = ?`
	err = tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt, &res.UpdatedAt)
	return err
}

// createServiciosBulkTx inserts the reservation_servicios rows in a
// single statement.  Passing an empty slice has no effect.
func createServiciosBulkTx(ctx context.Context, tx *sql.Tx, reservationID uint64, servicios []model.Servicio) error {
	if len(servicios) == 0 {
		return nil
	}
	query := `INSERT INTO reservation_servicios (reservation_id, servicio_id) VALUES `
	args := make([]interface{}, 0, len(servicios)*2)
	for i, s := range servicios {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, reservationID, s.ID)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByID fetches a reservation by id including its servicio list.
// ErrReservationNotFound is returned when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT id, company_id, customer_id, start_date, start_time, end_date,
	                  origin_address, destination_address, price, status, chat_id, created_at, updated_at
	           FROM reservations WHERE id = ?`
	var res model.Reservation
	var chatID sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.CompanyID, &res.CustomerID, &res.StartDate, &res.StartTime, &res.EndDate,
		&res.OriginAddress, &res.DestinationAddress, &res.Price, &res.Status, &chatID,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if chatID.Valid {
		cid := uint64(chatID.Int64)
		res.ChatID = &cid
	}
	out := []*model.Reservation{&res}
	if err := r.populateServicios(ctx, out); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update overwrites the mutable fields of a reservation (price, status
// and chat linkage).  Company, customer, scheduling and address fields
// are immutable after creation and are not touched.  The stored
// updated_at value is read back into the record.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations
	           SET price = ?, status = ?, chat_id = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	var chatID interface{}
	if res.ChatID != nil {
		chatID = *res.ChatID
	}
	if _, err := r.db.ExecContext(ctx, q, res.Price, res.Status, chatID, res.ID); err != nil {
		return err
	}
	return r.db.QueryRowContext(ctx, `SELECT updated_at FROM reservations WHERE id = ?`, res.ID).
		Scan(&res.UpdatedAt)
}

// ListByCustomer returns all reservations made by a customer in
// insertion order.  An empty slice is returned when none exist.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]*model.Reservation, error) {
	const q = `SELECT id, company_id, customer_id, start_date, start_time, end_date,
	                  origin_address, destination_address, price, status, chat_id, created_at, updated_at
	           FROM reservations WHERE customer_id = ? ORDER BY id`
	return r.list(ctx, q, customerID)
}

// ListByCompany returns all reservations owned by a company in
// insertion order.  An empty slice is returned when none exist.
func (r *ReservationRepo) ListByCompany(ctx context.Context, companyID uint64) ([]*model.Reservation, error) {
	const q = `SELECT id, company_id, customer_id, start_date, start_time, end_date,
	                  origin_address, destination_address, price, status, chat_id, created_at, updated_at
	           FROM reservations WHERE company_id = ? ORDER BY id`
	return r.list(ctx, q, companyID)
}

// ListByCompanyAndStatus returns the company's reservations whose status
// matches exactly.  The comparison is case sensitive (BINARY) so that
// "confirmed" does not match "CONFIRMED".
func (r *ReservationRepo) ListByCompanyAndStatus(ctx context.Context, companyID uint64, status string) ([]*model.Reservation, error) {
	const q = `SELECT id, company_id, customer_id, start_date, start_time, end_date,
	                  origin_address, destination_address, price, status, chat_id, created_at, updated_at
	           FROM reservations WHERE company_id = ? AND BINARY status = ? ORDER BY id`
	return r.list(ctx, q, companyID, status)
}

func (r *ReservationRepo) list(ctx context.Context, q string, args ...interface{}) ([]*model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Reservation, 0)
	for rows.Next() {
		res := new(model.Reservation)
		var chatID sql.NullInt64
		if err := rows.Scan(
			&res.ID, &res.CompanyID, &res.CustomerID, &res.StartDate, &res.StartTime, &res.EndDate,
			&res.OriginAddress, &res.DestinationAddress, &res.Price, &res.Status, &chatID,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if chatID.Valid {
			cid := uint64(chatID.Int64)
			res.ChatID = &cid
		}
		out = append(out, res)
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
	return out, nil
}

// populateServicios loads the servicio lists for all given reservations
// in a single IN query and attaches them in servicio id order.
func (r *ReservationRepo) populateServicios(ctx context.Context, reservations []*model.Reservation) error {
	index := make(map[uint64]*model.Reservation, len(reservations))
	ids := make([]interface{}, 0, len(reservations))
	placeholders := make([]string, 0, len(reservations))
	for _, res := range reservations {
		res.Servicios = []model.Servicio{}
		index[res.ID] = res
		ids = append(ids, res.ID)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT rs.reservation_id, s.id, s.name, s.description
	      FROM reservation_servicios rs
	      JOIN servicios s ON s.id = rs.servicio_id
	      WHERE rs.reservation_id IN (` + strings.Join(placeholders, ",") + `)
	      ORDER BY rs.reservation_id, s.id`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var reservationID uint64
		var s model.Servicio
		var desc sql.NullString
		if err := rows.Scan(&reservationID, &s.ID, &s.Name, &desc); err != nil {
			return err
		}
		if desc.Valid {
			d := desc.String
			s.Description = &d
		}
		if res, ok := index[reservationID]; ok {
			res.Servicios = append(res.Servicios, s)
		}
	}
	return rows.Err()
}
