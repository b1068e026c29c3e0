package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceDuration(t *testing.T) {
	assert.Equal(t, 45, ParseServiceDuration("Klippning,450 kr,45 min,Klippning och styling"))
	assert.Equal(t, 90, ParseServiceDuration("Färgning,1200 kr,90 min"))
	assert.Equal(t, 0, ParseServiceDuration("Klippning"))
	assert.Equal(t, 0, ParseServiceDuration("Klippning,450 kr"))
	assert.Equal(t, 0, ParseServiceDuration("Klippning,450 kr,snart,beskrivning"))
}

func TestDurationMinutes(t *testing.T) {
	b := Booking{Duration: 30}
	assert.Equal(t, 30, b.DurationMinutes())

	b = Booking{Service: "Klippning,450 kr,45 min,styling"}
	assert.Equal(t, 45, b.DurationMinutes())

	b = Booking{Service: "Klippning"}
	assert.Equal(t, DefaultDurationMinutes, b.DurationMinutes())
}

func TestStartsAt(t *testing.T) {
	b := Booking{Date: "2026-09-10", Time: "11:00"}
	at, err := b.StartsAt(time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 10, 11, 0, 0, 0, time.UTC), at)

	b = Booking{Date: "2026-09-10", Time: "noon"}
	_, err = b.StartsAt(time.UTC)
	assert.Error(t, err)
}

func TestBookingCustomer(t *testing.T) {
	registered := RegisteredCustomer("cust-1")
	assert.False(t, registered.IsGuest())
	assert.Equal(t, "cust-1", registered.RegisteredID)
	assert.Nil(t, registered.Guest)

	guest := GuestCustomer("Eva Berg", "eva@example.com", "+46701234567")
	assert.True(t, guest.IsGuest())
	assert.Empty(t, guest.RegisteredID)
	assert.Equal(t, "Eva Berg", guest.Guest.Name)
}
