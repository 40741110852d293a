// File: database/repository/booking/queries.go
package bookingRepo

import (
	"fmt"
	"time"

	"angoni/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByReference retrieves a booking by its generated reference.
func (r *MongoBookingRepo) GetByReference(reference string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"booking_reference": reference}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with reference %s: %w", reference, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with reference %s: %w", reference, err)
	}
	return &booking, nil
}

// List returns bookings newest-first, optionally filtered by status,
// booking_type and limited in size.
func (r *MongoBookingRepo) List(filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.BookingType != "" {
		query["booking_type"] = filter.BookingType
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
