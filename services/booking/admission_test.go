package booking

import (
	"testing"
	"time"

	bookingRepo "bokaenkelt/database/repository/booking"
	"bokaenkelt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.StylistID == b.StylistID && existing.Date == b.Date &&
			existing.Time == b.Time && existing.Status.Active() {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) { return f.bookings, nil }

func (f *fakeBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Customer.RegisteredID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByStylist(stylistID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StylistID == stylistID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindActiveByStylistAndDate(stylistID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StylistID == stylistID && b.Date == date && b.Status.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) BookedTimes(stylistID, date string) ([]string, error) {
	var out []string
	for _, b := range f.bookings {
		if b.StylistID == stylistID && b.Date == date && b.Status.Active() {
			out = append(out, b.Time)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			applyFakeFields(&f.bookings[i], fields)
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateFieldsOwned(id, customerID string, fields bson.M) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Customer.RegisteredID == customerID {
			applyFakeFields(&f.bookings[i], fields)
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) MarkReminderSent(id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].ReminderSent = true
		}
	}
	return nil
}

func applyFakeFields(b *models.Booking, fields bson.M) {
	if v, ok := fields["date"].(string); ok {
		b.Date = v
	}
	if v, ok := fields["time"].(string); ok {
		b.Time = v
	}
	if v, ok := fields["service"].(string); ok {
		b.Service = v
	}
	if v, ok := fields["duration"].(int); ok {
		b.Duration = v
	}
	if v, ok := fields["status"].(models.BookingStatus); ok {
		b.Status = v
	}
	if v, ok := fields["reminderSent"].(bool); ok {
		b.ReminderSent = v
	}
}

type fakeStylistRepo struct {
	stylists map[string]*models.Stylist
}

func (f *fakeStylistRepo) GetByID(id string) (*models.Stylist, error) { return f.stylists[id], nil }
func (f *fakeStylistRepo) GetByEmail(email string) (*models.Stylist, error) {
	for _, s := range f.stylists {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeStylistRepo) GetAllActive() ([]models.Stylist, error) { return nil, nil }
func (f *fakeStylistRepo) GetAll() ([]models.Stylist, error)       { return nil, nil }
func (f *fakeStylistRepo) Create(s *models.Stylist) error {
	f.stylists[s.ID] = s
	return nil
}
func (f *fakeStylistRepo) UpdateFields(id string, fields bson.M) (*models.Stylist, error) {
	return f.stylists[id], nil
}
func (f *fakeStylistRepo) Deactivate(id string) error              { return nil }
func (f *fakeStylistRepo) SetTokenHash(id, hash string) error      { return nil }
func (f *fakeStylistRepo) TokenHashByID(id string) (string, error) { return "", nil }

type sentMail struct {
	email, name, appointment string
}

type fakeNotifier struct {
	confirmations []sentMail
	reminders     []sentMail
}

func (f *fakeNotifier) SendConfirmation(email, name, appointment string) error {
	f.confirmations = append(f.confirmations, sentMail{email, name, appointment})
	return nil
}

func (f *fakeNotifier) SendReminder(email, appointment string) error {
	f.reminders = append(f.reminders, sentMail{email: email, appointment: appointment})
	return nil
}

type fakeScheduler struct {
	scheduled []string
	cancelled []string
}

func (f *fakeScheduler) Schedule(b *models.Booking) error {
	f.scheduled = append(f.scheduled, b.ID)
	return nil
}

func (f *fakeScheduler) Cancel(bookingID string) error {
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier, *fakeScheduler) {
	repo := &fakeBookingRepo{}
	stylists := &fakeStylistRepo{stylists: map[string]*models.Stylist{
		"sty-1": {
			ID:           "sty-1",
			Name:         "Anna Lindqvist",
			IsActive:     true,
			Availability: models.DefaultAvailability(),
		},
	}}
	notifier := &fakeNotifier{}
	scheduler := &fakeScheduler{}
	svc := NewDefaultBookingService(repo, stylists, notifier, scheduler)
	return svc, repo, notifier, scheduler
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Stylist:       "sty-1",
		Date:          "2026-09-10",
		Time:          "11:00",
		Service:       "Klippning,450 kr,45 min,Klippning och styling",
		CustomerName:  "Eva Berg",
		CustomerEmail: "eva@example.com",
		CustomerPhone: "+46701234567",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("admits and persists a valid booking", func(t *testing.T) {
		svc, repo, notifier, scheduler := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.StatusConfirmed, created.Status)
		assert.Equal(t, 45, created.Duration)
		assert.Equal(t, "cust-1", created.Customer.RegisteredID)
		assert.False(t, created.Customer.IsGuest())

		require.Len(t, repo.bookings, 1)
		require.Len(t, notifier.confirmations, 1)
		assert.Equal(t, "eva@example.com", notifier.confirmations[0].email)
		assert.Equal(t, "2026-09-10 kl. 11:00", notifier.confirmations[0].appointment)
		assert.Equal(t, []string{created.ID}, scheduler.scheduled)
	})

	t.Run("rejects the second booking for an occupied slot", func(t *testing.T) {
		svc, repo, _, _ := newTestService()

		_, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		_, err = svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-2"))
		require.Error(t, err)
		assert.True(t, IsConflict(err))
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("rejects an overlapping slot", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		req := validRequest()
		req.Time = "11:30"
		_, err = svc.CreateBooking(req, models.RegisteredCustomer("cust-2"))
		assert.True(t, IsConflict(err))
	})

	t.Run("admits a booking right after the previous one ends", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		req := validRequest()
		req.Time = "11:45"
		_, err = svc.CreateBooking(req, models.RegisteredCustomer("cust-2"))
		assert.NoError(t, err)
	})

	t.Run("validation failures persist nothing", func(t *testing.T) {
		svc, repo, notifier, _ := newTestService()

		for _, mutate := range []func(*models.BookingRequest){
			func(r *models.BookingRequest) { r.Stylist = "" },
			func(r *models.BookingRequest) { r.CustomerName = "" },
			func(r *models.BookingRequest) { r.CustomerEmail = "not-an-email" },
			func(r *models.BookingRequest) { r.Service = "" },
			func(r *models.BookingRequest) { r.Date = "10/09/2026" },
			func(r *models.BookingRequest) { r.Time = "noon" },
		} {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateBooking(req, models.RegisteredCustomer("cust-1"))
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		}
		assert.Empty(t, repo.bookings)
		assert.Empty(t, notifier.confirmations)
	})

	t.Run("guest bookings carry contact details instead of an account", func(t *testing.T) {
		svc, repo, _, _ := newTestService()

		guest := models.GuestCustomer("Eva Berg", "eva@example.com", "+46701234567")
		created, err := svc.CreateBooking(validRequest(), guest)
		require.NoError(t, err)

		assert.True(t, created.Customer.IsGuest())
		assert.Empty(t, created.Customer.RegisteredID)
		assert.Equal(t, "eva@example.com", created.Customer.Guest.Email)
		require.Len(t, repo.bookings, 1)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		svc, _, _, scheduler := newTestService()

		first, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		_, err = svc.Cancel(first.ID, Requester{ID: "cust-1", Role: "customer"})
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID}, scheduler.cancelled)

		_, err = svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-2"))
		assert.NoError(t, err)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Run("moving to a taken slot conflicts", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		req := validRequest()
		req.Time = "14:00"
		second, err := svc.CreateBooking(req, models.RegisteredCustomer("cust-2"))
		require.NoError(t, err)

		newTime := "11:00"
		_, err = svc.Update(second.ID, Requester{ID: "cust-2", Role: "customer"}, models.BookingUpdate{Time: &newTime})
		assert.True(t, IsConflict(err))
	})

	t.Run("moving the slot reschedules the reminder", func(t *testing.T) {
		svc, _, _, scheduler := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		newTime := "15:00"
		updated, err := svc.Update(created.ID, Requester{ID: "cust-1", Role: "customer"}, models.BookingUpdate{Time: &newTime})
		require.NoError(t, err)
		assert.Equal(t, "15:00", updated.Time)
		assert.False(t, updated.ReminderSent)
		assert.Equal(t, []string{created.ID}, scheduler.cancelled)
		assert.Equal(t, []string{created.ID, created.ID}, scheduler.scheduled)
	})

	t.Run("a booking can keep its own slot", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		sameTime := created.Time
		updated, err := svc.Update(created.ID, Requester{ID: "cust-1", Role: "customer"}, models.BookingUpdate{Time: &sameTime})
		require.NoError(t, err)
		assert.Equal(t, created.Time, updated.Time)
	})

	t.Run("customers cannot touch other customers' bookings", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		newTime := "15:00"
		_, err = svc.Update(created.ID, Requester{ID: "cust-2", Role: "customer"}, models.BookingUpdate{Time: &newTime})
		assert.True(t, IsNotFound(err))
	})

	t.Run("elevated roles may update any booking", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		status := "Genomförd"
		updated, err := svc.Update(created.ID, Requester{ID: "sty-1", Role: "stylist"}, models.BookingUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, updated.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		created, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		status := "archived"
		_, err = svc.Update(created.ID, Requester{ID: "sty-1", Role: "stylist"}, models.BookingUpdate{Status: &status})
		assert.True(t, IsValidation(err))
	})
}

func TestDaySlots(t *testing.T) {
	now := time.Date(2026, time.September, 2, 14, 30, 0, 0, time.UTC)

	t.Run("selectable date yields the grid and booked subset", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateBooking(validRequest(), models.RegisteredCustomer("cust-1"))
		require.NoError(t, err)

		slots, err := svc.DaySlots("sty-1", "2026-09-10", now)
		require.NoError(t, err)
		assert.True(t, slots.Selectable)
		assert.Equal(t, "10:00", slots.Slots[0])
		assert.Equal(t, "18:00", slots.Slots[len(slots.Slots)-1])
		assert.Equal(t, []string{"11:00"}, slots.Booked)
	})

	t.Run("today is not selectable", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		slots, err := svc.DaySlots("sty-1", "2026-09-02", now)
		require.NoError(t, err)
		assert.False(t, slots.Selectable)
		assert.Empty(t, slots.Slots)
	})

	t.Run("unknown stylist is not found", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.DaySlots("missing", "2026-09-10", now)
		assert.True(t, IsNotFound(err))
	})
}
