package model

import "time"

// Membership is a time-bounded subscription linking a company to a
// paid tier.  Member companies are highlighted in the directory.
// The reservation core treats memberships as read-only records.
//
// Fields:
//  ID          – primary key identifier.
//  CompanyID   – subscribed company (one membership per company).
//  StartDate   – first day the subscription is active.
//  EndDate     – last day the subscription is active.
//  Description – tier description.
//  Price       – price paid for the subscription.
type Membership struct {
	ID          uint64    // memberships.id
	CompanyID   uint64    // memberships.company_id
	StartDate   time.Time // memberships.start_date
	EndDate     time.Time // memberships.end_date
	Description string    // memberships.description
	Price       float64   // memberships.price
}
