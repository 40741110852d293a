package models

import "time"

// Booking represents a persisted customer booking for a package, vehicle,
// shuttle or custom itinerary.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	BookingReference string    `bson:"booking_reference" json:"booking_reference"` // Generated, immutable after creation
	BookingType      string    `bson:"booking_type" json:"booking_type"`           // "package" | "vehicle" | "shuttle" | "custom"
	LeadFirstName    string    `bson:"lead_first_name" json:"lead_first_name"`
	LeadLastName     string    `bson:"lead_last_name" json:"lead_last_name"`
	LeadEmail        string    `bson:"lead_email" json:"lead_email"`
	LeadPhone        string    `bson:"lead_phone,omitempty" json:"lead_phone,omitempty"`
	TravelDate       string    `bson:"travel_date,omitempty" json:"travel_date,omitempty"` // "YYYY-MM-DD"
	PartySize        int       `bson:"party_size,omitempty" json:"party_size,omitempty"`
	SpecialRequests  string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	TotalAmount      float64   `bson:"total_amount" json:"total_amount"`
	PaymentStatus    string    `bson:"payment_status" json:"payment_status"` // Set by the payment path, opaque here
	Status           string    `bson:"status" json:"status"`                 // Lifecycle state, defaults to "pending"
	IPAddress        string    `bson:"ip_address" json:"ip_address"`         // Request provenance, captured at creation
	UserAgent        string    `bson:"user_agent" json:"user_agent"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingInput is the caller-suppliable subset of a booking. Provenance
// fields (ip_address, user_agent) are always derived from the request and
// never taken from the payload.
type BookingInput struct {
	BookingType     string  `json:"booking_type" binding:"required,oneof=package vehicle shuttle custom"`
	LeadFirstName   string  `json:"lead_first_name" binding:"required"`
	LeadLastName    string  `json:"lead_last_name" binding:"required"`
	LeadEmail       string  `json:"lead_email" binding:"required,email"`
	LeadPhone       string  `json:"lead_phone"`
	TravelDate      string  `json:"travel_date"`
	PartySize       int     `json:"party_size"`
	SpecialRequests string  `json:"special_requests"`
	TotalAmount     float64 `json:"total_amount" binding:"gte=0"`
	PaymentStatus   string  `json:"payment_status"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	Status      string
	BookingType string
	Limit       int
}
