package booking

import (
	"fmt"
	"time"

	bookingRepo "bokaenkelt/database/repository/booking"
	"bokaenkelt/models"
	"bokaenkelt/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetByID retrieves one booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return booking, nil
}

// ListAll retrieves every booking.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// ListForCustomer retrieves the bookings owned by a registered customer.
func (s *DefaultBookingService) ListForCustomer(customerID string) ([]models.Booking, error) {
	return s.Repo.GetByCustomer(customerID)
}

// ListForStylist retrieves the bookings of a stylist.
func (s *DefaultBookingService) ListForStylist(stylistID string) ([]models.Booking, error) {
	return s.Repo.GetByStylist(stylistID)
}

// BookedTimes returns the booked "HH:MM" strings for a stylist and date.
func (s *DefaultBookingService) BookedTimes(stylistID, date string) ([]string, error) {
	return s.Repo.BookedTimes(stylistID, date)
}

// Update applies a partial update. When the booking moves to another date or
// time, the overlap check runs again against the target day (excluding the
// booking itself) before anything is written.
func (s *DefaultBookingService) Update(id string, requester Requester, update models.BookingUpdate) (*models.Booking, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !requester.Elevated() && current.Customer.RegisteredID != requester.ID {
		return nil, NewNotFoundError("booking not found")
	}

	fields := bson.M{}
	targetDate, targetTime := current.Date, current.Time
	targetService := current.Service

	if update.Date != nil {
		if _, err := time.Parse("2006-01-02", *update.Date); err != nil {
			return nil, NewValidationError("date must be on the form YYYY-MM-DD")
		}
		targetDate = *update.Date
		fields["date"] = targetDate
	}
	if update.Time != nil {
		if _, err := ParseClock(*update.Time); err != nil {
			return nil, NewValidationError("time must be on the form HH:MM")
		}
		targetTime = *update.Time
		fields["time"] = targetTime
	}
	if update.Service != nil {
		targetService = *update.Service
		fields["service"] = targetService
		if d := models.ParseServiceDuration(targetService); d > 0 {
			fields["duration"] = d
		}
	}
	if update.Status != nil {
		status, ok := models.ParseBookingStatus(*update.Status)
		if !ok {
			return nil, NewValidationError("unknown booking status")
		}
		fields["status"] = status
	}
	if len(fields) == 0 {
		return current, nil
	}

	slotMoved := targetDate != current.Date || targetTime != current.Time
	if slotMoved {
		duration := models.ParseServiceDuration(targetService)
		if duration == 0 {
			duration = current.DurationMinutes()
		}

		lock := s.locks.get(current.StylistID, targetDate)
		lock.Lock()
		defer lock.Unlock()

		existing, err := s.Repo.FindActiveByStylistAndDate(current.StylistID, targetDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing bookings: %w", err)
		}
		others := make([]models.Booking, 0, len(existing))
		for _, b := range existing {
			if b.ID != id {
				others = append(others, b)
			}
		}
		if !IsSlotAvailable(targetTime, duration, others) {
			return nil, NewConflictError("the selected time is no longer available")
		}
		// The slot moved, so a previously scheduled reminder points at the
		// wrong instant.
		fields["reminderSent"] = false
	}

	updated, err := s.applyUpdate(id, requester, fields)
	if err != nil {
		return nil, err
	}

	if slotMoved && s.Reminders != nil {
		if err := s.Reminders.Cancel(id); err != nil {
			utils.GetLogger().Warn("failed to cancel stale reminder", zap.String("bookingID", id), zap.Error(err))
		}
		if err := s.Reminders.Schedule(updated); err != nil {
			utils.GetLogger().Warn("failed to reschedule reminder", zap.String("bookingID", id), zap.Error(err))
		}
	}
	return updated, nil
}

// Cancel transitions a booking to the cancelled state and drops its pending
// reminder. The record is kept; cancelled bookings no longer block the slot.
func (s *DefaultBookingService) Cancel(id string, requester Requester) (*models.Booking, error) {
	fields := bson.M{"status": models.StatusCancelled}
	updated, err := s.applyUpdate(id, requester, fields)
	if err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.Cancel(id); err != nil {
			utils.GetLogger().Warn("failed to cancel reminder", zap.String("bookingID", id), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *DefaultBookingService) applyUpdate(id string, requester Requester, fields bson.M) (*models.Booking, error) {
	var updated *models.Booking
	var err error
	if requester.Elevated() {
		updated, err = s.Repo.UpdateFields(id, fields)
	} else {
		updated, err = s.Repo.UpdateFieldsOwned(id, requester.ID, fields)
	}
	if err != nil {
		if err == bookingRepo.ErrDuplicateSlot {
			return nil, NewConflictError("the selected time is no longer available")
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return updated, nil
}
