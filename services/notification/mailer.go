package notification

import (
	"fmt"

	"angoni/config"
	"angoni/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends transactional email through the configured SMTP relay.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	adminTo string
}

// NewSMTPMailer builds a mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return &SMTPMailer{
		dialer:  dialer,
		from:    cfg.SMTPUser,
		adminTo: cfg.AdminEmail,
	}
}

// SendBookingConfirmation emails the lead contact. One attempt, no retries;
// failures are logged and reduced to false.
func (m *SMTPMailer) SendBookingConfirmation(booking models.Booking) bool {
	body, err := RenderConfirmation(booking)
	if err != nil {
		zap.L().Error("Failed to render booking confirmation",
			zap.String("reference", booking.BookingReference), zap.Error(err))
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", booking.LeadEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Booking Confirmation - %s", booking.BookingReference))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		zap.L().Warn("Failed to send booking confirmation",
			zap.String("reference", booking.BookingReference),
			zap.String("to", booking.LeadEmail), zap.Error(err))
		return false
	}
	return true
}

// SendAdminAlert emails the admin address. Failures are logged and dropped.
func (m *SMTPMailer) SendAdminAlert(subject, htmlBody string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.adminTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		zap.L().Warn("Failed to send admin alert", zap.String("subject", subject), zap.Error(err))
	}
}
