package notification

// NotificationService sends transactional email to customers. Sends are
// best-effort: callers log failures and never roll back the booking they
// belong to.
type NotificationService interface {
	// SendConfirmation mails a booking confirmation.
	SendConfirmation(email, name, appointment string) error
	// SendReminder mails an appointment reminder.
	SendReminder(email, appointment string) error
}
