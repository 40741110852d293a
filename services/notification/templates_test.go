package notification

import (
	"testing"

	"angoni/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmationSubstitutesBookingFields(t *testing.T) {
	body, err := RenderConfirmation(models.Booking{
		BookingReference: "ANG-2025-0042",
		BookingType:      "package",
		LeadFirstName:    "Amina",
		LeadLastName:     "Mwakasege",
		TotalAmount:      450,
		PaymentStatus:    "pending",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "ANG-2025-0042")
	assert.Contains(t, body, "Dear Amina Mwakasege")
	assert.Contains(t, body, "$450.00")
	assert.Contains(t, body, "pending")
}

func TestRenderConfirmationEscapesUserFields(t *testing.T) {
	body, err := RenderConfirmation(models.Booking{
		BookingReference: "ANG-2025-0042",
		LeadFirstName:    `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderTripRequestAlert(t *testing.T) {
	body, err := RenderTripRequestAlert(models.TripRequest{
		FullName:    "Joseph Banda",
		Email:       "joseph@example.com",
		Destination: "Serengeti",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-08",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Joseph Banda")
	assert.Contains(t, body, "Serengeti")
	assert.Contains(t, body, "2026-09-01 to 2026-09-08")
}

func TestRenderContactAlertEscapesMessage(t *testing.T) {
	body, err := RenderContactAlert(models.ContactMessage{
		Name:    "Eve",
		Email:   "eve@example.com",
		Subject: "Question",
		Message: `<img src=x onerror=alert(1)>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "&lt;img")
}
