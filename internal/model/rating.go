package model

import "time"

// Rating is a star review left by a customer for a company.  The
// directory consumes ratings read-only when computing a company's
// average rating.
//
// Fields:
//  ID        – primary key identifier.
//  CompanyID – company the rating belongs to.
//  Stars     – star value, bounded 1..5.
//  Comment   – optional review text (nil if unset).
//  CreatedAt – timestamp of creation.
type Rating struct {
	ID        uint64    // ratings.id
	CompanyID uint64    // ratings.company_id
	Stars     int       // ratings.stars
	Comment   *string   // ratings.comment (nullable)
	CreatedAt time.Time // ratings.created_at
}
