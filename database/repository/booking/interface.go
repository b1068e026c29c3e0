package bookingRepo

import (
	"errors"

	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateSlot is returned when the unique slot index rejects an insert,
// meaning another non-cancelled booking already holds the exact slot.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. Returns ErrDuplicateSlot when the
	// exact (stylist, date, time) slot is already held by an active booking.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID, nil when not found.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// GetByCustomer retrieves bookings made by a registered customer.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByStylist retrieves all bookings for a stylist.
	GetByStylist(stylistID string) ([]models.Booking, error)
	// FindActiveByStylistAndDate retrieves the non-cancelled bookings for a
	// stylist on a calendar date. This is the authoritative set for the
	// overlap check.
	FindActiveByStylistAndDate(stylistID, date string) ([]models.Booking, error)
	// BookedTimes returns the sorted, de-duplicated start times ("HH:MM") of
	// non-cancelled bookings for a stylist on a date.
	BookedTimes(stylistID, date string) ([]string, error)
	// UpdateFields applies a partial update by ID and returns the updated
	// booking, nil when not found.
	UpdateFields(id string, fields bson.M) (*models.Booking, error)
	// UpdateFieldsOwned applies a partial update scoped to the owning
	// registered customer, nil when not found or not owned.
	UpdateFieldsOwned(id, customerID string, fields bson.M) (*models.Booking, error)
	// MarkReminderSent flags a booking's reminder as delivered.
	MarkReminderSent(id string) error
}
