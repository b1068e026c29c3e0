package booking

import "bokaenkelt/models"

// IsSlotAvailable decides admission for a proposed start time and duration
// against the stylist's existing bookings for that date. Intervals are
// half-open [start, start+duration): two bookings touching at a boundary
// (one ending 10:00, one starting 10:00) are compatible.
//
// This check is the single source of truth: the client's disabled-slot list
// only filters exact time-string matches and must never be relied on.
func IsSlotAvailable(proposedStart string, proposedDuration int, existing []models.Booking) bool {
	start, err := ParseClock(proposedStart)
	if err != nil {
		return false
	}
	if proposedDuration <= 0 {
		proposedDuration = models.DefaultDurationMinutes
	}
	end := start + proposedDuration

	for i := range existing {
		b := &existing[i]
		if !b.Status.Active() {
			continue
		}
		existingStart, err := ParseClock(b.Time)
		if err != nil {
			// An unparseable stored time cannot be placed on the day; skip it
			// rather than blocking the whole grid.
			continue
		}
		existingEnd := existingStart + b.DurationMinutes()

		if start < existingEnd && end > existingStart {
			return false
		}
	}
	return true
}
