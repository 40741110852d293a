package notification

import "angoni/models"

// Mailer defines the transactional email surface. Every send is a single
// best-effort attempt: transport failures are logged and swallowed, never
// propagated to the caller.
type Mailer interface {
	// SendBookingConfirmation emails the lead contact. The boolean result is
	// observed for logging only; a false return never fails the booking.
	SendBookingConfirmation(booking models.Booking) bool
	// SendAdminAlert emails the configured admin address.
	SendAdminAlert(subject, htmlBody string)
}
