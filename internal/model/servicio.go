package model

// Servicio is a catalog service offering (packing, transport,
// assembly and so on).  Servicios are immutable reference data:
// companies advertise a subset of them and reservations request a
// subset of them.  Neither side owns the record.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the offering.
//  Description – optional description (nil if unset).
type Servicio struct {
	ID          uint64  `json:"id"`                    // servicios.id
	Name        string  `json:"name"`                  // servicios.name
	Description *string `json:"description,omitempty"` // servicios.description (nullable)
}
