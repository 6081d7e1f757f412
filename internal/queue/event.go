// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Event kinds published on the reservation.events queue.
const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent is published when a reservation is created or its
// status changes.  It carries enough information for downstream
// consumers to log, notify or trigger analytics without querying the
// primary database.
type ReservationEvent struct {
	Kind          string  `json:"kind"`
	ReservationID uint64  `json:"reservation_id"`
	CompanyID     uint64  `json:"company_id"`
	CompanyName   string  `json:"company_name"`
	CustomerID    uint64  `json:"customer_id"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	OccurredAt    string  `json:"occurred_at"`
}
