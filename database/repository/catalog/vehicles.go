// File: database/repository/catalog/vehicles.go
package catalogRepo

import (
	"fmt"
	"time"

	"angoni/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListVehicles returns available vehicles newest-first, narrowed by the filter.
func (r *MongoCatalogRepo) ListVehicles(filter models.VehicleFilter) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": "available"}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price_per_day"] = price
	}
	if filter.Featured {
		query["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.vehicles.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

// GetVehicle retrieves a single vehicle by its ID.
func (r *MongoCatalogRepo) GetVehicle(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// CreateVehicle inserts a new vehicle document.
func (r *MongoCatalogRepo) CreateVehicle(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	vehicle.ID = uuid.New().String()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if vehicle.Status == "" {
		vehicle.Status = "available"
	}

	if _, err := r.vehicles.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// UpdateVehicle applies a partial update and returns the updated document.
func (r *MongoCatalogRepo) UpdateVehicle(id string, fields bson.M) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	delete(fields, "id")
	delete(fields, "created_at")
	fields["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var vehicle models.Vehicle
	err := r.vehicles.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle document by its ID.
func (r *MongoCatalogRepo) DeleteVehicle(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.vehicles.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountAvailableVehicles counts vehicles with status "available", store-side.
func (r *MongoCatalogRepo) CountAvailableVehicles() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.vehicles.CountDocuments(ctx, bson.M{"status": "available"})
	if err != nil {
		return 0, fmt.Errorf("failed to count available vehicles: %w", err)
	}
	return count, nil
}
