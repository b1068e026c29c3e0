package booking

import (
	"time"

	"bokaenkelt/models"
)

// Requester identifies who is calling a booking operation, as established by
// the auth middleware.
type Requester struct {
	ID   string
	Role string // "customer", "stylist" or "superadmin"
}

// Elevated reports whether the requester may operate on bookings they do not own.
func (r Requester) Elevated() bool {
	return r.Role == "stylist" || r.Role == "superadmin"
}

// DaySlots is the server-computed slot view for one stylist and date.
type DaySlots struct {
	Date       string   `json:"date"`
	Selectable bool     `json:"selectable"`
	Slots      []string `json:"slots"`
	Booked     []string `json:"booked"`
}

// ReminderScheduler schedules and cancels appointment reminder delivery.
type ReminderScheduler interface {
	// Schedule enqueues a reminder for the booking at its reminder fire time.
	Schedule(booking *models.Booking) error
	// Cancel removes a previously scheduled reminder, if still pending.
	Cancel(bookingID string) error
}

// BookingService defines booking admission and management operations.
type BookingService interface {
	// CreateBooking validates and admits a booking for the given customer
	// identity (registered or guest). Returns an AdmissionError with a
	// validation or conflict code on rejection.
	CreateBooking(req models.BookingRequest, customer models.BookingCustomer) (*models.Booking, error)
	// GetByID retrieves one booking.
	GetByID(id string) (*models.Booking, error)
	// ListAll retrieves every booking (admin/stylist view).
	ListAll() ([]models.Booking, error)
	// ListForCustomer retrieves the bookings owned by a registered customer.
	ListForCustomer(customerID string) ([]models.Booking, error)
	// ListForStylist retrieves the bookings of a stylist.
	ListForStylist(stylistID string) ([]models.Booking, error)
	// BookedTimes returns the booked "HH:MM" strings for a stylist and date.
	BookedTimes(stylistID, date string) ([]string, error)
	// DaySlots computes the full hourly slot grid for a stylist and date,
	// with weekday eligibility and the booked subset.
	DaySlots(stylistID, date string, now time.Time) (*DaySlots, error)
	// Update applies a partial update, re-running the overlap check when the
	// slot moves. Customers may only update their own bookings.
	Update(id string, requester Requester, update models.BookingUpdate) (*models.Booking, error)
	// Cancel transitions a booking to the cancelled state. Customers may only
	// cancel their own bookings.
	Cancel(id string, requester Requester) (*models.Booking, error)
}
