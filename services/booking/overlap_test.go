package booking

import (
	"testing"

	"bokaenkelt/models"

	"github.com/stretchr/testify/assert"
)

func existingAt(start string, duration int, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:       "b-" + start,
		Time:     start,
		Duration: duration,
		Status:   status,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	t.Run("empty day admits anything", func(t *testing.T) {
		assert.True(t, IsSlotAvailable("10:00", 60, nil))
	})

	t.Run("exact duplicate start conflicts", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:00", 60, models.StatusConfirmed)}
		assert.False(t, IsSlotAvailable("10:00", 60, existing))
	})

	t.Run("adjacent bookings are compatible", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:00", 60, models.StatusConfirmed)}
		assert.True(t, IsSlotAvailable("11:00", 60, existing))
		assert.True(t, IsSlotAvailable("09:00", 60, existing))
	})

	t.Run("partial overlap conflicts", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:00", 60, models.StatusConfirmed)}
		assert.False(t, IsSlotAvailable("10:30", 15, existing))
		assert.False(t, IsSlotAvailable("09:30", 60, existing))
	})

	t.Run("proposed interval swallowing an existing one conflicts", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:30", 15, models.StatusConfirmed)}
		assert.False(t, IsSlotAvailable("10:00", 120, existing))
	})

	t.Run("cancelled bookings free their slot", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:00", 60, models.StatusCancelled)}
		assert.True(t, IsSlotAvailable("10:00", 60, existing))
	})

	t.Run("zero duration defaults to an hour", func(t *testing.T) {
		existing := []models.Booking{existingAt("10:00", 60, models.StatusConfirmed)}
		assert.False(t, IsSlotAvailable("10:59", 0, existing))
		assert.True(t, IsSlotAvailable("11:00", 0, existing))
	})

	t.Run("duration parsed from the service label", func(t *testing.T) {
		b := models.Booking{
			ID:      "b1",
			Time:    "10:00",
			Service: "Klippning,450 kr,45 min,Klippning och styling",
			Status:  models.StatusConfirmed,
		}
		assert.False(t, IsSlotAvailable("10:30", 30, []models.Booking{b}))
		assert.True(t, IsSlotAvailable("10:45", 30, []models.Booking{b}))
	})

	t.Run("unparseable proposed start is rejected", func(t *testing.T) {
		assert.False(t, IsSlotAvailable("noon", 60, nil))
	})
}
