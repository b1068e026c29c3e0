package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"pending":   StatusPending,
		"Väntande":  StatusPending,
		"confirmed": StatusConfirmed,
		"Bekräftad": StatusConfirmed,
		"CANCELLED": StatusCancelled,
		"Avbokad":   StatusCancelled,
		"AVBOKAD":   StatusCancelled,
		"completed": StatusCompleted,
		"Genomförd": StatusCompleted,
		"GENOMFÖRD": StatusCompleted,
		"VÄNTANDE":  StatusPending,
	}
	for label, want := range cases {
		got, ok := ParseBookingStatus(label)
		assert.True(t, ok, "label %q", label)
		assert.Equal(t, want, got, "label %q", label)
	}

	_, ok := ParseBookingStatus("archived")
	assert.False(t, ok)
	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}

func TestStatusSwedish(t *testing.T) {
	assert.Equal(t, "Bekräftad", StatusConfirmed.Swedish())
	assert.Equal(t, "Avbokad", StatusCancelled.Swedish())
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())
	assert.True(t, StatusCompleted.Active())
	assert.False(t, StatusCancelled.Active())
}
