package notification

import (
	"bytes"
	"html/template"

	"angoni/models"
)

// Templates interpolate user-supplied fields through html/template so every
// value is output-encoded before it reaches the rendered email.

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: #0B3D2E; color: white; padding: 20px; text-align: center;">
        <h1 style="margin: 0;">ANGONI Adventure</h1>
        <p style="margin: 5px 0;">Luxury Made Affordable</p>
    </div>
    <div style="padding: 30px; background: #f8f9fa;">
        <h2 style="color: #0B3D2E;">Booking Confirmed!</h2>
        <p>Dear {{.LeadFirstName}} {{.LeadLastName}},</p>
        <p>Thank you for booking with ANGONI Adventure. Your booking has been confirmed.</p>

        <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <h3 style="color: #D4AF37; margin-top: 0;">Booking Details</h3>
            <p><strong>Booking Reference:</strong> {{.BookingReference}}</p>
            <p><strong>Service Type:</strong> {{.BookingType}}</p>
            <p><strong>Total Amount:</strong> ${{printf "%.2f" .TotalAmount}}</p>
            <p><strong>Payment Status:</strong> {{.PaymentStatus}}</p>
        </div>

        <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <h3 style="color: #D4AF37; margin-top: 0;">Contact Information</h3>
            <p><strong>Phone:</strong> +255 784 282 123</p>
            <p><strong>Email:</strong> info@angoniadventure.com</p>
            <p><strong>WhatsApp:</strong> +255 784 282 123</p>
        </div>

        <p style="color: #666;">If you have any questions, please don't hesitate to contact us.</p>
        <p style="margin-top: 30px;">Best regards,<br><strong>ANGONI Adventure Team</strong></p>
    </div>
    <div style="background: #0B3D2E; color: white; padding: 15px; text-align: center; font-size: 12px;">
        <p style="margin: 0;">&copy; 2025 ANGONI Adventure. All rights reserved.</p>
    </div>
</div>
`))

var tripRequestTmpl = template.Must(template.New("tripRequest").Parse(`
<h2>New Trip Planning Request</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Destination:</strong> {{.Destination}}</p>
<p><strong>Dates:</strong> {{.StartDate}} to {{.EndDate}}</p>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<h2>New Contact Message</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// RenderConfirmation renders the booking confirmation email body.
func RenderConfirmation(booking models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, booking); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTripRequestAlert renders the admin alert for a trip planning request.
func RenderTripRequestAlert(req models.TripRequest) (string, error) {
	var buf bytes.Buffer
	if err := tripRequestTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderContactAlert renders the admin alert for a contact form submission.
func RenderContactAlert(msg models.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
