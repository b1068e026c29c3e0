package models

import "strings"

// BookingStatus is the closed set of booking states. The canonical value is
// always the English lowercase form; Swedish labels exist only at the
// presentation boundary.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

var swedishStatusLabels = map[BookingStatus]string{
	StatusPending:   "Väntande",
	StatusConfirmed: "Bekräftad",
	StatusCancelled: "Avbokad",
	StatusCompleted: "Genomförd",
}

var statusAliases = map[string]BookingStatus{
	"pending":   StatusPending,
	"väntande":  StatusPending,
	"confirmed": StatusConfirmed,
	"bekräftad": StatusConfirmed,
	"cancelled": StatusCancelled,
	"avbokad":   StatusCancelled,
	"completed": StatusCompleted,
	"genomförd": StatusCompleted,
}

// ParseBookingStatus maps an English or Swedish status label to its canonical
// value. Unknown labels are rejected.
func ParseBookingStatus(label string) (BookingStatus, bool) {
	s, ok := statusAliases[strings.ToLower(label)]
	return s, ok
}

// Swedish returns the localized display label for the status.
func (s BookingStatus) Swedish() string {
	if label, ok := swedishStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Active reports whether the booking still occupies its time slot.
func (s BookingStatus) Active() bool {
	return s != StatusCancelled
}
