package booking

import (
	"errors"
	"testing"

	bookingRepo "angoni/database/repository/booking"
	"angoni/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeRepo struct {
	bookingRepo.BookingRepository

	created      []models.Booking
	failuresLeft int
	failWith     error
	byReference  map[string]models.Booking
}

func (f *fakeRepo) Create(b *models.Booking) error {
	if f.failuresLeft != 0 {
		if f.failuresLeft > 0 {
			f.failuresLeft--
		}
		return f.failWith
	}
	b.ID = "generated-id"
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeRepo) GetByReference(ref string) (*models.Booking, error) {
	if b, ok := f.byReference[ref]; ok {
		return &b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

type fakeMailer struct {
	sent    []models.Booking
	succeed bool
}

func (f *fakeMailer) SendBookingConfirmation(b models.Booking) bool {
	f.sent = append(f.sent, b)
	return f.succeed
}

func (f *fakeMailer) SendAdminAlert(subject, body string) {}

type fakeRecorder struct {
	events []recordedEvent
}

type recordedEvent struct {
	eventType string
	data      map[string]interface{}
	meta      models.RequestMeta
}

func (f *fakeRecorder) Record(eventType string, data map[string]interface{}, meta models.RequestMeta) {
	f.events = append(f.events, recordedEvent{eventType, data, meta})
}

func newService(repo *fakeRepo, mailer *fakeMailer, recorder *fakeRecorder) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Mailer: mailer, Recorder: recorder}
}

func sampleInput() models.BookingInput {
	return models.BookingInput{
		BookingType:   "package",
		LeadFirstName: "Amina",
		LeadLastName:  "Mwakasege",
		LeadEmail:     "amina@example.com",
		TotalAmount:   450,
		PaymentStatus: "pending",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{succeed: true}
	recorder := &fakeRecorder{}
	svc := newService(repo, mailer, recorder)

	meta := models.RequestMeta{UserIP: "203.0.113.9", UserAgent: "curl/8.0"}
	created, err := svc.Create(sampleInput(), meta)
	require.NoError(t, err)

	assert.Regexp(t, `^ANG-\d{4}-\d{4}$`, created.BookingReference)
	assert.Equal(t, "203.0.113.9", created.IPAddress)
	assert.Equal(t, "curl/8.0", created.UserAgent)

	require.Len(t, repo.created, 1)
	assert.Equal(t, created.BookingReference, repo.created[0].BookingReference)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, created.BookingReference, mailer.sent[0].BookingReference)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "booking_created", recorder.events[0].eventType)
	assert.Equal(t, created.BookingReference, recorder.events[0].data["booking_reference"])
	assert.Equal(t, "package", recorder.events[0].data["booking_type"])
	assert.Equal(t, 450.0, recorder.events[0].data["total_amount"])
}

func TestCreateBookingProvenanceNeverCallerSupplied(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeMailer{succeed: true}, &fakeRecorder{})

	// BookingInput has no provenance fields at all, so whatever extra keys a
	// caller posts cannot reach the record. The persisted values come from
	// the request meta alone.
	meta := models.RequestMeta{UserIP: "198.51.100.4", UserAgent: "test-agent"}
	created, err := svc.Create(sampleInput(), meta)
	require.NoError(t, err)

	assert.Equal(t, "198.51.100.4", created.IPAddress)
	assert.Equal(t, "test-agent", created.UserAgent)
}

func TestCreateBookingMailerFailureDoesNotFail(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{succeed: false}
	recorder := &fakeRecorder{}
	svc := newService(repo, mailer, recorder)

	created, err := svc.Create(sampleInput(), models.RequestMeta{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.BookingReference)

	// The booking was persisted and the usage event still recorded.
	assert.Len(t, repo.created, 1)
	assert.Len(t, recorder.events, 1)
}

func TestCreateBookingRetriesOnReferenceCollision(t *testing.T) {
	repo := &fakeRepo{failuresLeft: 1, failWith: bookingRepo.ErrDuplicateReference}
	svc := newService(repo, &fakeMailer{succeed: true}, &fakeRecorder{})

	created, err := svc.Create(sampleInput(), models.RequestMeta{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.BookingReference)
	assert.Len(t, repo.created, 1)
}

func TestCreateBookingGivesUpAfterBoundedAttempts(t *testing.T) {
	repo := &fakeRepo{failuresLeft: -1, failWith: bookingRepo.ErrDuplicateReference}
	mailer := &fakeMailer{succeed: true}
	recorder := &fakeRecorder{}
	svc := newService(repo, mailer, recorder)

	_, err := svc.Create(sampleInput(), models.RequestMeta{})
	require.Error(t, err)

	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)

	// No side effects fire when persistence fails.
	assert.Empty(t, mailer.sent)
	assert.Empty(t, recorder.events)
}

func TestCreateBookingPersistenceFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{failuresLeft: -1, failWith: errors.New("connection reset")}
	mailer := &fakeMailer{succeed: true}
	svc := newService(repo, mailer, &fakeRecorder{})

	_, err := svc.Create(sampleInput(), models.RequestMeta{})
	require.Error(t, err)

	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)
	assert.Empty(t, mailer.sent)
}

func TestGetByReferenceNotFound(t *testing.T) {
	svc := newService(&fakeRepo{}, &fakeMailer{}, &fakeRecorder{})

	_, err := svc.GetByReference("ANG-2025-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByReferenceFound(t *testing.T) {
	repo := &fakeRepo{byReference: map[string]models.Booking{
		"ANG-2025-0042": {BookingReference: "ANG-2025-0042", LeadEmail: "amina@example.com"},
	}}
	svc := newService(repo, &fakeMailer{}, &fakeRecorder{})

	found, err := svc.GetByReference("ANG-2025-0042")
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", found.LeadEmail)
}
