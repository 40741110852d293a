// File: database/repository/booking/booking.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"angoni/database"
	"angoni/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// ErrDuplicateReference is returned when an insert collides with an existing
// booking_reference. The unique index makes the collision visible so the
// caller can regenerate.
var ErrDuplicateReference = errors.New("duplicate booking reference")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByReference(reference string) (*models.Booking, error)
	List(filter models.BookingFilter) ([]models.Booking, error)
	UpdateFields(id string, fields bson.M) (*models.Booking, error)
	Count() (int64, error)
	PaidAmounts() ([]float64, error)
	LeadEmails() ([]string, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
