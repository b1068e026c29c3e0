package models

// ReminderPayload is the payload of a queued appointment reminder task.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}
