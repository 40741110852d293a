package booking

import (
	"errors"

	bookingRepo "angoni/database/repository/booking"
	"angoni/models"
	"angoni/services/analytics"
	"angoni/services/notification"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// referenceAttempts bounds regeneration when an insert collides with an
// existing booking_reference.
const referenceAttempts = 3

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Mailer   notification.Mailer
	Recorder analytics.Recorder
}

// Create persists a new booking enriched with a generated reference and
// request provenance, then fires the confirmation email and usage event.
// Only the persistence step can fail the operation; both side effects are
// best-effort.
func (s *DefaultBookingService) Create(input models.BookingInput, meta models.RequestMeta) (*models.Booking, error) {
	record := &models.Booking{
		BookingType:     input.BookingType,
		LeadFirstName:   input.LeadFirstName,
		LeadLastName:    input.LeadLastName,
		LeadEmail:       input.LeadEmail,
		LeadPhone:       input.LeadPhone,
		TravelDate:      input.TravelDate,
		PartySize:       input.PartySize,
		SpecialRequests: input.SpecialRequests,
		TotalAmount:     input.TotalAmount,
		PaymentStatus:   input.PaymentStatus,
		IPAddress:       meta.UserIP,
		UserAgent:       meta.UserAgent,
	}

	var err error
	for attempt := 1; attempt <= referenceAttempts; attempt++ {
		record.BookingReference = GenerateReference()
		err = s.Repo.Create(record)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingRepo.ErrDuplicateReference) {
			return nil, &PersistenceError{Op: "create booking", Err: err}
		}
		zap.L().Warn("Booking reference collision, regenerating",
			zap.String("reference", record.BookingReference), zap.Int("attempt", attempt))
	}
	if err != nil {
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}

	if sent := s.Mailer.SendBookingConfirmation(*record); !sent {
		zap.L().Warn("Booking confirmation email not sent",
			zap.String("reference", record.BookingReference))
	}

	s.Recorder.Record("booking_created", map[string]interface{}{
		"booking_reference": record.BookingReference,
		"booking_type":      record.BookingType,
		"total_amount":      record.TotalAmount,
	}, meta)

	return record, nil
}

// List returns bookings matching the filter, newest first.
func (s *DefaultBookingService) List(filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.List(filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

// GetByReference fetches a booking by its generated reference.
func (s *DefaultBookingService) GetByReference(reference string) (*models.Booking, error) {
	booking, err := s.Repo.GetByReference(reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "get booking", Err: err}
	}
	return booking, nil
}

// Update applies an externally-driven partial update (status, payment fields).
func (s *DefaultBookingService) Update(id string, fields bson.M) (*models.Booking, error) {
	booking, err := s.Repo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "update booking", Err: err}
	}
	return booking, nil
}
