// File: database/repository/catalog/routes.go
package catalogRepo

import (
	"fmt"
	"time"

	"angoni/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListShuttles returns active shuttle routes ordered by name.
func (r *MongoCatalogRepo) ListShuttles() ([]models.ShuttleRoute, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.shuttles.Find(ctx, bson.M{"status": "active"}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shuttle routes: %w", err)
	}
	defer cursor.Close(ctx)

	shuttles := []models.ShuttleRoute{}
	if err := cursor.All(ctx, &shuttles); err != nil {
		return nil, fmt.Errorf("failed to decode shuttle routes: %w", err)
	}
	return shuttles, nil
}

// ListDestinations returns active destinations, optionally only featured ones.
func (r *MongoCatalogRepo) ListDestinations(featuredOnly bool) ([]models.Destination, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": "active"}
	if featuredOnly {
		query["featured"] = true
	}

	cursor, err := r.destinations.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []models.Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return destinations, nil
}
