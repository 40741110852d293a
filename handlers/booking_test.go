package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"angoni/models"
	"angoni/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingService struct {
	created   *models.Booking
	createErr error
	gotInput  models.BookingInput
	gotMeta   models.RequestMeta

	byReference map[string]*models.Booking
}

func (f *fakeBookingService) Create(input models.BookingInput, meta models.RequestMeta) (*models.Booking, error) {
	f.gotInput = input
	f.gotMeta = meta
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeBookingService) List(filter models.BookingFilter) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

func (f *fakeBookingService) GetByReference(reference string) (*models.Booking, error) {
	if b, ok := f.byReference[reference]; ok {
		return b, nil
	}
	return nil, booking.ErrNotFound
}

func (f *fakeBookingService) Update(id string, fields bson.M) (*models.Booking, error) {
	return nil, booking.ErrNotFound
}

func newRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/:reference", h.GetBookingByReference)
	return r
}

const validPayload = `{
	"booking_type": "package",
	"lead_first_name": "Amina",
	"lead_last_name": "Mwakasege",
	"lead_email": "amina@example.com",
	"total_amount": 450
}`

func TestCreateBookingEndpointSuccess(t *testing.T) {
	svc := &fakeBookingService{created: &models.Booking{
		ID:               "b-1",
		BookingReference: "ANG-2025-0042",
		BookingType:      "package",
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Session-Id", "sess-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ANG-2025-0042", body.Booking.BookingReference)
	assert.Equal(t, "Booking created successfully", body.Message)

	// Provenance comes from the request, not the payload.
	assert.Equal(t, "203.0.113.9", svc.gotMeta.UserIP)
	assert.Equal(t, "test-agent", svc.gotMeta.UserAgent)
	assert.Equal(t, "sess-1", svc.gotMeta.SessionID)
}

func TestCreateBookingEndpointIgnoresCallerProvenance(t *testing.T) {
	svc := &fakeBookingService{created: &models.Booking{BookingReference: "ANG-2025-0001"}}
	router := newRouter(svc)

	// Extra provenance keys in the payload must not reach the service input.
	payload := `{
		"booking_type": "custom",
		"lead_first_name": "A",
		"lead_last_name": "B",
		"lead_email": "a@b.com",
		"ip_address": "6.6.6.6",
		"user_agent": "spoofed"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "198.51.100.4", svc.gotMeta.UserIP)
}

func TestCreateBookingEndpointInvalidPayload(t *testing.T) {
	router := newRouter(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"booking_type":"package"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateBookingEndpointPersistenceFailure(t *testing.T) {
	svc := &fakeBookingService{createErr: &booking.PersistenceError{Op: "create booking"}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetBookingByReferenceNotFound(t *testing.T) {
	router := newRouter(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/ANG-2025-9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Booking not found"}`, w.Body.String())
}

func TestGetBookingByReferenceFound(t *testing.T) {
	svc := &fakeBookingService{byReference: map[string]*models.Booking{
		"ANG-2025-0042": {BookingReference: "ANG-2025-0042"},
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/ANG-2025-0042", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ANG-2025-0042")
}
