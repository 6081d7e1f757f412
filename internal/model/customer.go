package model

import "time"

// Customer represents a client account that requests moving
// reservations from companies.  This struct corresponds to a row
// in the `customers` table.  Identity fields are immutable once
// created; contact fields change only through account updates.
//
// Fields:
//  ID           – primary key identifier.
//  FirstName    – given name of the customer.
//  LastName     – family name of the customer.
//  Email        – unique email address used for login.
//  PasswordHash – bcrypt hashed password.
//  PhoneNumber  – contact phone number.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Customer struct {
	ID           uint64    // customers.id
	FirstName    string    // customers.first_name
	LastName     string    // customers.last_name
	Email        string    // customers.email
	PasswordHash string    // customers.password_hash
	PhoneNumber  string    // customers.phone_number
	CreatedAt    time.Time // customers.created_at
	UpdatedAt    time.Time // customers.updated_at
}
