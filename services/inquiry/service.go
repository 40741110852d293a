package inquiry

import (
	"errors"
	"fmt"

	inquiryRepo "angoni/database/repository/inquiry"
	"angoni/models"
	"angoni/services/analytics"
	"angoni/services/notification"

	"go.uber.org/zap"
)

// ErrAlreadySubscribed is returned when a newsletter signup repeats an email.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Service handles visitor inquiries: trip planning requests, contact
// messages and newsletter signups.
type Service interface {
	PlanTrip(input models.TripRequestInput, meta models.RequestMeta) (*models.TripRequest, error)
	ListTripRequests() ([]models.TripRequest, error)
	Contact(input models.ContactMessageInput) (*models.ContactMessage, error)
	Subscribe(email string, meta models.RequestMeta) error
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	Repo     inquiryRepo.InquiryRepository
	Mailer   notification.Mailer
	Recorder analytics.Recorder
}

// PlanTrip persists the request, alerts the admin and records a usage event.
// Only persistence can fail the operation.
func (s *DefaultInquiryService) PlanTrip(input models.TripRequestInput, meta models.RequestMeta) (*models.TripRequest, error) {
	req := &models.TripRequest{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		PartySize:   input.PartySize,
		Budget:      input.Budget,
		Details:     input.Details,
	}
	if err := s.Repo.CreateTripRequest(req); err != nil {
		return nil, err
	}

	if body, err := notification.RenderTripRequestAlert(*req); err != nil {
		zap.L().Error("Failed to render trip request alert", zap.Error(err))
	} else {
		s.Mailer.SendAdminAlert("New Plan My Trip Request", body)
	}

	s.Recorder.Record("plan_trip_request", map[string]interface{}{"email": req.Email}, meta)
	return req, nil
}

// ListTripRequests returns all trip requests newest-first.
func (s *DefaultInquiryService) ListTripRequests() ([]models.TripRequest, error) {
	return s.Repo.ListTripRequests()
}

// Contact persists the message and alerts the admin.
func (s *DefaultInquiryService) Contact(input models.ContactMessageInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.Repo.CreateContactMessage(msg); err != nil {
		return nil, err
	}

	if body, err := notification.RenderContactAlert(*msg); err != nil {
		zap.L().Error("Failed to render contact alert", zap.Error(err))
	} else {
		s.Mailer.SendAdminAlert(fmt.Sprintf("New Contact Message: %s", msg.Subject), body)
	}
	return msg, nil
}

// Subscribe registers a newsletter subscriber. A repeated email maps to
// ErrAlreadySubscribed.
func (s *DefaultInquiryService) Subscribe(email string, meta models.RequestMeta) error {
	if _, err := s.Repo.Subscribe(email); err != nil {
		if errors.Is(err, inquiryRepo.ErrDuplicateEmail) {
			return ErrAlreadySubscribed
		}
		return err
	}
	s.Recorder.Record("newsletter_subscribe", map[string]interface{}{"email": email}, meta)
	return nil
}
