package inquiry

import (
	"testing"

	inquiryRepo "angoni/database/repository/inquiry"
	"angoni/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInquiryRepo struct {
	tripRequests []models.TripRequest
	contacts     []models.ContactMessage
	subscribed   []string
	subscribeErr error
}

func (f *fakeInquiryRepo) CreateTripRequest(req *models.TripRequest) error {
	req.ID = "trip-1"
	f.tripRequests = append(f.tripRequests, *req)
	return nil
}

func (f *fakeInquiryRepo) ListTripRequests() ([]models.TripRequest, error) {
	return f.tripRequests, nil
}

func (f *fakeInquiryRepo) CreateContactMessage(msg *models.ContactMessage) error {
	msg.ID = "contact-1"
	f.contacts = append(f.contacts, *msg)
	return nil
}

func (f *fakeInquiryRepo) Subscribe(email string) (*models.NewsletterSubscriber, error) {
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.subscribed = append(f.subscribed, email)
	return &models.NewsletterSubscriber{ID: "sub-1", Email: email}, nil
}

type fakeMailer struct {
	alerts []string
}

func (f *fakeMailer) SendBookingConfirmation(b models.Booking) bool { return true }

func (f *fakeMailer) SendAdminAlert(subject, body string) {
	f.alerts = append(f.alerts, subject)
}

type fakeRecorder struct {
	eventTypes []string
}

func (f *fakeRecorder) Record(eventType string, data map[string]interface{}, meta models.RequestMeta) {
	f.eventTypes = append(f.eventTypes, eventType)
}

func TestPlanTripPersistsAlertsAndRecords(t *testing.T) {
	repo := &fakeInquiryRepo{}
	mailer := &fakeMailer{}
	recorder := &fakeRecorder{}
	svc := &DefaultInquiryService{Repo: repo, Mailer: mailer, Recorder: recorder}

	req, err := svc.PlanTrip(models.TripRequestInput{
		FullName:    "Joseph Banda",
		Email:       "joseph@example.com",
		Destination: "Serengeti",
	}, models.RequestMeta{})
	require.NoError(t, err)

	assert.Equal(t, "trip-1", req.ID)
	assert.Len(t, repo.tripRequests, 1)
	assert.Equal(t, []string{"New Plan My Trip Request"}, mailer.alerts)
	assert.Equal(t, []string{"plan_trip_request"}, recorder.eventTypes)
}

func TestContactAlertsAdminWithSubject(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &DefaultInquiryService{Repo: &fakeInquiryRepo{}, Mailer: mailer, Recorder: &fakeRecorder{}}

	_, err := svc.Contact(models.ContactMessageInput{
		Name:    "Eve",
		Email:   "eve@example.com",
		Subject: "Gorilla trekking",
		Message: "Do you run tours in Rwanda?",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"New Contact Message: Gorilla trekking"}, mailer.alerts)
}

func TestSubscribeSuccessRecordsEvent(t *testing.T) {
	repo := &fakeInquiryRepo{}
	recorder := &fakeRecorder{}
	svc := &DefaultInquiryService{Repo: repo, Mailer: &fakeMailer{}, Recorder: recorder}

	err := svc.Subscribe("reader@example.com", models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, []string{"reader@example.com"}, repo.subscribed)
	assert.Equal(t, []string{"newsletter_subscribe"}, recorder.eventTypes)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	repo := &fakeInquiryRepo{subscribeErr: inquiryRepo.ErrDuplicateEmail}
	recorder := &fakeRecorder{}
	svc := &DefaultInquiryService{Repo: repo, Mailer: &fakeMailer{}, Recorder: recorder}

	err := svc.Subscribe("reader@example.com", models.RequestMeta{})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Empty(t, recorder.eventTypes)
}
