package models

import "time"

// TripRequest is a "plan my trip" inquiry submitted by a visitor.
type TripRequest struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"full_name" json:"full_name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Destination string    `bson:"destination,omitempty" json:"destination,omitempty"`
	StartDate   string    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     string    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	PartySize   int       `bson:"party_size,omitempty" json:"party_size,omitempty"`
	Budget      float64   `bson:"budget,omitempty" json:"budget,omitempty"`
	Details     string    `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// TripRequestInput is the caller-suppliable trip request payload.
type TripRequestInput struct {
	FullName    string  `json:"full_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PartySize   int     `json:"party_size"`
	Budget      float64 `json:"budget"`
	Details     string  `json:"details"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ContactMessageInput is the caller-suppliable contact payload.
type ContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// NewsletterSubscriber is a newsletter signup. Email is unique.
type NewsletterSubscriber struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
