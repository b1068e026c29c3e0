package models

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDurationMinutes is assumed when a booking's service label does not
// carry an explicit duration.
const DefaultDurationMinutes = 60

// Booking represents a booked appointment with a stylist.
type Booking struct {
	ID            string          `bson:"id" json:"id"`
	StylistID     string          `bson:"stylistId" json:"stylist"`
	Customer      BookingCustomer `bson:"customer" json:"customer"`
	CustomerName  string          `bson:"customerName" json:"customerName"`
	CustomerEmail string          `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string          `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Service       string          `bson:"service" json:"service"`                     // free text, may encode "name,price,duration,description"
	Date          string          `bson:"date" json:"date"`                           // "YYYY-MM-DD"
	Time          string          `bson:"time" json:"time"`                           // "HH:MM", stylist-local wall clock
	Duration      int             `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Status        BookingStatus   `bson:"status" json:"status"`
	ReminderSent  bool            `bson:"reminderSent" json:"reminderSent"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// DurationMinutes resolves the effective duration of the booking: the explicit
// field when set, otherwise a duration parsed out of the composite service
// label, otherwise the default.
func (b *Booking) DurationMinutes() int {
	if b.Duration > 0 {
		return b.Duration
	}
	if d := ParseServiceDuration(b.Service); d > 0 {
		return d
	}
	return DefaultDurationMinutes
}

// StartsAt combines the booking date and time into an absolute instant in the
// given location.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
}

// ParseServiceDuration extracts a duration in minutes from a composite service
// label of the form "name,price,duration,description" (e.g. "Klippning,450
// kr,45 min,Klippning och styling"). Returns 0 when no duration is present.
func ParseServiceDuration(service string) int {
	parts := strings.Split(service, ",")
	if len(parts) < 3 {
		return 0
	}
	digits := strings.Builder{}
	for _, r := range parts[2] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return minutes
}

// BookingRequest is the inbound payload for creating a booking.
type BookingRequest struct {
	Stylist       string `json:"stylist" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Service       string `json:"service" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone"`
}

// BookingUpdate carries the mutable booking fields for a partial update. Nil
// pointers leave the stored value untouched.
type BookingUpdate struct {
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Service *string `json:"service,omitempty"`
	Status  *string `json:"status,omitempty"`
}
