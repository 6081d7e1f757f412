package model

import "time"

// Reservation status tokens.  StatusPending is the initial state of
// every new reservation.  The remaining tokens are the values the
// frontend moves reservations through; status updates are not
// guarded by a transition table, so any non-blank string can be
// stored (see service.ReservationService.UpdateReservationStatus).
const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// Reservation records a customer's booking with a moving company.
// It links one customer, one company and the list of servicios
// requested for the move, and tracks price, lifecycle status and
// the optional chat attached after creation.  This struct
// corresponds to a row in the `reservations` table.
//
// Company and customer references are mandatory and immutable
// after creation.  Price is zero until a company assigns one.
//
// Fields:
//  ID                 – primary key identifier.
//  CompanyID          – company performing the move.
//  CustomerID         – customer who requested the move.
//  StartDate          – moving date.
//  StartTime          – moving time of day ("15:04" wall clock).
//  EndDate            – expected end date of the move.
//  OriginAddress      – pickup address.
//  DestinationAddress – delivery address.
//  Price              – agreed price, 0 until assigned.
//  Status             – lifecycle state (PENDING initially).
//  ChatID             – attached chat reference (nil until a chat
//                       is created for the reservation).
//  Servicios          – ordered list of requested servicios.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Reservation struct {
	ID                 uint64     // reservations.id
	CompanyID          uint64     // reservations.company_id
	CustomerID         uint64     // reservations.customer_id
	StartDate          time.Time  // reservations.start_date
	StartTime          string     // reservations.start_time
	EndDate            time.Time  // reservations.end_date
	OriginAddress      string     // reservations.origin_address
	DestinationAddress string     // reservations.destination_address
	Price              float64    // reservations.price
	Status             string     // reservations.status
	ChatID             *uint64    // reservations.chat_id (nullable)
	Servicios          []Servicio // via reservation_servicios
	CreatedAt          time.Time  // reservations.created_at
	UpdatedAt          time.Time  // reservations.updated_at
}
