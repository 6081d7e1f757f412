package model

import "time"

// Chat is the linkage record connecting a reservation to its
// messaging thread.  The messages themselves live in an external
// system; this backend only mints the id and attaches it to the
// reservation.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – reservation the chat belongs to.
//  CreatedAt     – timestamp of creation.
type Chat struct {
	ID            uint64    // chats.id
	ReservationID uint64    // chats.reservation_id
	CreatedAt     time.Time // chats.created_at
}
