package models

import "time"

// BookingCustomer identifies who made a booking: either a registered customer
// account or a guest with contact details only. Exactly one side is set; a
// guest booking never carries a placeholder account ID.
type BookingCustomer struct {
	RegisteredID string        `bson:"registeredId,omitempty" json:"registeredId,omitempty"`
	Guest        *GuestContact `bson:"guest,omitempty" json:"guest,omitempty"`
}

// GuestContact holds the contact details supplied with a guest booking.
type GuestContact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// RegisteredCustomer tags a booking with an authenticated account.
func RegisteredCustomer(id string) BookingCustomer {
	return BookingCustomer{RegisteredID: id}
}

// GuestCustomer tags a booking with guest contact details.
func GuestCustomer(name, email, phone string) BookingCustomer {
	return BookingCustomer{Guest: &GuestContact{Name: name, Email: email, Phone: phone}}
}

// IsGuest reports whether the booking was made without an account.
func (c BookingCustomer) IsGuest() bool {
	return c.Guest != nil
}

// Customer is a registered customer account.
type Customer struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"` // always "customer"
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
