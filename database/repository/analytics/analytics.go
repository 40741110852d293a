// File: database/repository/analytics/analytics.go
package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"angoni/database"
	"angoni/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalyticsRepository defines data access for usage events. Events are
// append-only; the booking path never reads them back.
type AnalyticsRepository interface {
	Insert(event *models.UsageEvent) error
	ListSince(eventType string, since time.Time) ([]models.UsageEvent, error)
}

// MongoAnalyticsRepo implements AnalyticsRepository using MongoDB.
type MongoAnalyticsRepo struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepo creates a new instance of AnalyticsRepository using MongoDB.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	repo := &MongoAnalyticsRepo{coll: database.Collection("analytics")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create analytics indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAnalyticsRepo) ensureIndexes() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "event_type", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// Insert appends a usage event document.
func (r *MongoAnalyticsRepo) Insert(event *models.UsageEvent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	event.ID = uuid.New().String()
	event.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert usage event: %w", err)
	}
	return nil
}

// ListSince returns events created at or after the given instant, newest
// first, optionally filtered by event type. The window boundary is inclusive.
func (r *MongoAnalyticsRepo) ListSince(eventType string, since time.Time) ([]models.UsageEvent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"created_at": bson.M{"$gte": since}}
	if eventType != "" {
		query["event_type"] = eventType
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.UsageEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode usage events: %w", err)
	}
	return events, nil
}
