package booking

import (
	"fmt"
	"regexp"
	"time"

	bookingRepo "bokaenkelt/database/repository/booking"
	stylistRepo "bokaenkelt/database/repository/stylist"
	"bokaenkelt/models"
	"bokaenkelt/services/notification"
	"bokaenkelt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over the booking repository.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	StylistRepo stylistRepo.StylistRepository
	Notifier    notification.NotificationService
	Reminders   ReminderScheduler

	locks *slotLocks
}

// NewDefaultBookingService wires a booking service.
func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	stylists stylistRepo.StylistRepository,
	notifier notification.NotificationService,
	reminders ReminderScheduler,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:        repo,
		StylistRepo: stylists,
		Notifier:    notifier,
		Reminders:   reminders,
		locks:       newSlotLocks(),
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRequest(req models.BookingRequest) error {
	if req.Stylist == "" {
		return NewValidationError("stylist is required")
	}
	if req.CustomerName == "" {
		return NewValidationError("name is required")
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return NewValidationError("a valid email address is required")
	}
	if req.Service == "" {
		return NewValidationError("service is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return NewValidationError("date must be on the form YYYY-MM-DD")
	}
	if _, err := ParseClock(req.Time); err != nil {
		return NewValidationError("time must be on the form HH:MM")
	}
	return nil
}

// CreateBooking validates and admits a booking. The overlap check and the
// insert run under a per-(stylist, date) lock so two concurrent requests for
// the same free slot cannot both pass the check; the repository's unique slot
// index backs this up across processes.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest, customer models.BookingCustomer) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}
	duration := models.ParseServiceDuration(req.Service)
	if duration == 0 {
		duration = models.DefaultDurationMinutes
	}

	lock := s.locks.get(req.Stylist, req.Date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Repo.FindActiveByStylistAndDate(req.Stylist, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bookings: %w", err)
	}
	if !IsSlotAvailable(req.Time, duration, existing) {
		return nil, NewConflictError("the selected time is no longer available")
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		StylistID:     req.Stylist,
		Customer:      customer,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      duration,
		Status:        models.StatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(booking); err != nil {
		if err == bookingRepo.ErrDuplicateSlot {
			return nil, NewConflictError("the selected time is no longer available")
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// The booking is durable from here on; reminder scheduling and the
	// confirmation email are best-effort side effects.
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(booking); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		appointment := fmt.Sprintf("%s kl. %s", booking.Date, booking.Time)
		if err := s.Notifier.SendConfirmation(booking.CustomerEmail, booking.CustomerName, appointment); err != nil {
			logger.Warn("failed to send confirmation email",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

// DaySlots computes the hourly grid for a stylist and date together with the
// booked subset, applying the weekday eligibility and next-day-minimum rules.
func (s *DefaultBookingService) DaySlots(stylistID, date string, now time.Time) (*DaySlots, error) {
	stylist, err := s.StylistRepo.GetByID(stylistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	if stylist == nil {
		return nil, NewNotFoundError("stylist not found")
	}

	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return nil, NewValidationError("date must be on the form YYYY-MM-DD")
	}

	result := &DaySlots{Date: date}
	if !IsDateSelectable(day, stylist.Availability.Days, now) {
		return result, nil
	}
	result.Selectable = true
	result.Slots = GenerateHourlySlots(stylist.Availability.Hours.Start, stylist.Availability.Hours.End)

	booked, err := s.Repo.BookedTimes(stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked times: %w", err)
	}
	result.Booked = booked
	return result, nil
}
