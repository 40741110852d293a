// File: database/repository/inquiry/inquiry.go
package inquiryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"angoni/database"
	"angoni/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when a newsletter signup collides with an
// already-subscribed email.
var ErrDuplicateEmail = errors.New("email already subscribed")

// InquiryRepository defines data access for trip requests, contact messages
// and newsletter subscribers.
type InquiryRepository interface {
	CreateTripRequest(req *models.TripRequest) error
	ListTripRequests() ([]models.TripRequest, error)
	CreateContactMessage(msg *models.ContactMessage) error
	Subscribe(email string) (*models.NewsletterSubscriber, error)
}

// MongoInquiryRepo implements InquiryRepository using MongoDB.
type MongoInquiryRepo struct {
	tripRequests *mongo.Collection
	contacts     *mongo.Collection
	subscribers  *mongo.Collection
}

// NewMongoInquiryRepo creates a new instance of InquiryRepository using MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	repo := &MongoInquiryRepo{
		tripRequests: database.Collection("plan_my_trip"),
		contacts:     database.Collection("contact_messages"),
		subscribers:  database.Collection("newsletter_subscribers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inquiry indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInquiryRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.subscribers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateTripRequest inserts a new trip planning request.
func (r *MongoInquiryRepo) CreateTripRequest(req *models.TripRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	req.ID = uuid.New().String()
	req.CreatedAt = time.Now().UTC()

	if _, err := r.tripRequests.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create trip request: %w", err)
	}
	return nil
}

// ListTripRequests returns all trip requests newest-first.
func (r *MongoInquiryRepo) ListTripRequests() ([]models.TripRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.tripRequests.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.TripRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode trip requests: %w", err)
	}
	return requests, nil
}

// CreateContactMessage inserts a contact form submission.
func (r *MongoInquiryRepo) CreateContactMessage(msg *models.ContactMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	if _, err := r.contacts.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// Subscribe inserts a newsletter subscriber. A duplicate email surfaces as
// ErrDuplicateEmail.
func (r *MongoInquiryRepo) Subscribe(email string) (*models.NewsletterSubscriber, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sub := &models.NewsletterSubscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.subscribers.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("subscriber %s: %w", email, ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return sub, nil
}
