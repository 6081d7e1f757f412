package model

import "time"

// Company represents a moving company listed in the directory.
// Companies offer servicios, receive ratings from customers and
// own reservations.  This struct corresponds to a row in the
// `companies` table plus its servicio and rating associations.
//
// Uniqueness constraints enforced at the directory level:
// the (Name, TIC) pair, the Email and the PhoneNumber must each
// be unique across all companies.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – trade name of the company.
//  TIC          – tax identification code (RUC), digits only.
//  Email        – unique email address used for login.
//  PhoneNumber  – unique contact phone number.
//  PasswordHash – bcrypt hashed password.
//  Description  – optional free-form description (nil if unset).
//  LogoURL      – optional logo location (nil if unset).
//  Servicios    – ordered list of offered servicio references.
//  Ratings      – rating records received from customers.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Company struct {
	ID           uint64     // companies.id
	Name         string     // companies.name
	TIC          string     // companies.tic
	Email        string     // companies.email
	PhoneNumber  string     // companies.phone_number
	PasswordHash string     // companies.password_hash
	Description  *string    // companies.description (nullable)
	LogoURL      *string    // companies.logo_url (nullable)
	Servicios    []Servicio // via company_servicios
	Ratings      []Rating   // via ratings.company_id
	CreatedAt    time.Time  // companies.created_at
	UpdatedAt    time.Time  // companies.updated_at
}
