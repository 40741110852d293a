// File: database/repository/booking/crud.go
package bookingRepo

import (
	"fmt"
	"time"

	"angoni/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document. The store assigns the identifier
// and timestamps; a booking_reference collision surfaces as
// ErrDuplicateReference.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	booking.ID = uuid.New().String()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = "pending"
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("booking reference %s already exists: %w", booking.BookingReference, ErrDuplicateReference)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateFields applies an externally-driven partial update (status, payment
// fields) and returns the updated document.
func (r *MongoBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Provenance and the generated reference are immutable after creation.
	delete(fields, "id")
	delete(fields, "booking_reference")
	delete(fields, "ip_address")
	delete(fields, "user_agent")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &booking, nil
}
